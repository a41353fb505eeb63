package backend

import (
	"context"
	"net/http"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseDto struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (d loginResponseDto) toDomain() domain.Credentials {
	tokenType := d.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return domain.Credentials{Token: d.AccessToken, TokenType: tokenType}
}

func (c *Client) BarberLogin(ctx context.Context, email, password string) (domain.Credentials, error) {
	return c.login(ctx, "/auth/barber/login", email, password)
}

func (c *Client) OwnerLogin(ctx context.Context, email, password string) (domain.Credentials, error) {
	return c.login(ctx, "/auth/owner/login", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) (domain.Credentials, error) {
	var dto loginResponseDto
	err := c.do(ctx, http.MethodPost, path, domain.Credentials{}, nil, loginPayload{
		Email:    email,
		Password: password,
	}, &dto)
	if err != nil {
		c.logger.Warn("backend.login.failed", out.LogFields{
			"path":  path,
			"error": err.Error(),
		})
		return domain.Credentials{}, err
	}

	c.logger.Info("backend.login.success", out.LogFields{
		"path": path,
	})
	return dto.toDomain(), nil
}
