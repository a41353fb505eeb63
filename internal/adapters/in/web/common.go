package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bearerCredentials reads the Authorization header. The gateway keeps no
// session of its own, the browser holds the token.
func bearerCredentials(ctx *gin.Context) domain.Credentials {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return domain.Credentials{}
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return domain.Credentials{}
	}
	return domain.Credentials{Token: parts[1], TokenType: parts[0]}
}

// writeError maps a use case error onto the response. Backend errors keep
// their original status and message, everything else is a 500.
func writeError(ctx *gin.Context, err error) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		ctx.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErrs.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
