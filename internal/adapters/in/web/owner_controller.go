package web

import (
	"net/http"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerController exposes the owner dashboard. The token obtained from
// login travels back in the Authorization header on every call.
type OwnerController struct {
	useCase in.OwnerUseCase
}

func NewOwnerController(useCase in.OwnerUseCase) *OwnerController {
	return &OwnerController{useCase: useCase}
}

func (c *OwnerController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/salons", c.register)
		api.POST("/auth/owner/login", c.login)

		api.GET("/owner/me/salon", c.mySalon)
		api.PUT("/salons/:salonId", c.updateSalon)

		api.GET("/salons/:salonId/barbers", c.listBarbers)
		api.POST("/salons/:salonId/barbers", c.addBarber)
		api.PUT("/salons/:salonId/barbers/:barberId", c.editBarber)
		api.DELETE("/salons/:salonId/barbers/:barberId", c.deactivateBarber)
	}
}

type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	FullName   string  `json:"fullName" binding:"required"`
	Phone      *string `json:"phone"`
	SalonName  string  `json:"salonName" binding:"required"`
	SalonPhone string  `json:"salonPhone" binding:"required"`
	Address    string  `json:"address" binding:"required"`
	Timezone   string  `json:"timezone"`
	Currency   string  `json:"currency"`
}

func (c *OwnerController) register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input domain.RegisterSalonInput
	input.Owner.Email = req.Email
	input.Owner.Password = req.Password
	input.Owner.FullName = req.FullName
	input.Owner.Phone = req.Phone
	input.Salon.Name = req.SalonName
	input.Salon.Phone = req.SalonPhone
	input.Salon.Address = req.Address
	input.Salon.Timezone = req.Timezone
	input.Salon.Currency = req.Currency

	salon, err := c.useCase.Register(ctx.Request.Context(), input)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newSalonView(*salon))
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (c *OwnerController) login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creds, err := c.useCase.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"accessToken": creds.Token,
		"tokenType":   creds.TokenType,
	})
}

func (c *OwnerController) mySalon(ctx *gin.Context) {
	salon, err := c.useCase.MySalon(ctx.Request.Context(), bearerCredentials(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSalonView(*salon))
}

type UpdateSalonRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Timezone string `json:"timezone" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

func (c *OwnerController) updateSalon(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	var req UpdateSalonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	salon, err := c.useCase.UpdateSalon(ctx.Request.Context(), bearerCredentials(ctx), salonID, domain.UpdateSalonInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Timezone: req.Timezone,
		Currency: req.Currency,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSalonView(*salon))
}

func (c *OwnerController) listBarbers(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	barbers, err := c.useCase.Barbers(ctx.Request.Context(), bearerCredentials(ctx), salonID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"barbers": newBarberViews(barbers)})
}

type AddBarberRequest struct {
	Email               string  `json:"email" binding:"required,email"`
	Password            string  `json:"password" binding:"required,min=6"`
	FullName            string  `json:"fullName" binding:"required"`
	Phone               *string `json:"phone"`
	DisplayName         string  `json:"displayName" binding:"required"`
	SlotDurationMinutes int     `json:"slotDurationMinutes" binding:"required,min=1"`
}

func (c *OwnerController) addBarber(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	var req AddBarberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	barber, err := c.useCase.AddBarber(ctx.Request.Context(), bearerCredentials(ctx), salonID, domain.CreateBarberInput{
		Email:               req.Email,
		Password:            req.Password,
		FullName:            req.FullName,
		Phone:               req.Phone,
		DisplayName:         req.DisplayName,
		SlotDurationMinutes: req.SlotDurationMinutes,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newBarberView(*barber))
}

type EditBarberRequest struct {
	DisplayName         string `json:"displayName" binding:"required"`
	Active              bool   `json:"active"`
	SlotDurationMinutes int    `json:"slotDurationMinutes" binding:"required,min=1"`
}

func (c *OwnerController) editBarber(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	barberID, err := uuid.Parse(ctx.Param("barberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID format"})
		return
	}

	var req EditBarberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	barber, err := c.useCase.EditBarber(ctx.Request.Context(), bearerCredentials(ctx), salonID, barberID, domain.UpdateBarberInput{
		DisplayName:         req.DisplayName,
		Active:              req.Active,
		SlotDurationMinutes: req.SlotDurationMinutes,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBarberView(*barber))
}

func (c *OwnerController) deactivateBarber(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	barberID, err := uuid.Parse(ctx.Param("barberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID format"})
		return
	}

	if err := c.useCase.DeactivateBarber(ctx.Request.Context(), bearerCredentials(ctx), salonID, barberID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
