package web

import (
	"net/http"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/in"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingController exposes the public booking flow, no authentication.
type BookingController struct {
	useCase in.BookingUseCase
}

func NewBookingController(useCase in.BookingUseCase) *BookingController {
	return &BookingController{useCase: useCase}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine) {
	public := router.Group("/api/v1/public")
	{
		public.GET("/salons/:salonId", c.getSalon)
		public.GET("/salons/:salonId/barbers", c.listBarbers)
		public.GET("/barbers/:barberId/services", c.listServices)
		public.GET("/barbers/:barberId/availability", c.getAvailability)
		public.POST("/appointments", c.book)
	}
}

func (c *BookingController) getSalon(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	salon, err := c.useCase.Salon(ctx.Request.Context(), salonID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSalonView(*salon))
}

func (c *BookingController) listBarbers(ctx *gin.Context) {
	salonID, err := uuid.Parse(ctx.Param("salonId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salon ID format"})
		return
	}

	barbers, err := c.useCase.Barbers(ctx.Request.Context(), salonID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"barbers": newBarberViews(barbers)})
}

func (c *BookingController) listServices(ctx *gin.Context) {
	barberID, err := uuid.Parse(ctx.Param("barberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID format"})
		return
	}

	services, err := c.useCase.BarberServices(ctx.Request.Context(), barberID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"services": newServiceViews(services)})
}

func (c *BookingController) getAvailability(ctx *gin.Context) {
	barberID, err := uuid.Parse(ctx.Param("barberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barber ID format"})
		return
	}

	serviceID, err := uuid.Parse(ctx.Query("serviceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID format"})
		return
	}

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	slots, err := c.useCase.Availability(ctx.Request.Context(), barberID, serviceID, date)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"slots": newSlotViews(slots),
	})
}

type BookRequest struct {
	SalonID         uuid.UUID `json:"salonId" binding:"required"`
	BarberID        uuid.UUID `json:"barberId" binding:"required"`
	BarberServiceID uuid.UUID `json:"barberServiceId" binding:"required"`
	CustomerName    string    `json:"customerName" binding:"required"`
	CustomerPhone   string    `json:"customerPhone" binding:"required"`
	CustomerEmail   string    `json:"customerEmail" binding:"omitempty,email"`
	StartAt         time.Time `json:"startAt" binding:"required"`
	Notes           string    `json:"notes"`
}

func (c *BookingController) book(ctx *gin.Context) {
	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.Book(ctx.Request.Context(), domain.BookingInput{
		SalonID:         req.SalonID,
		BarberID:        req.BarberID,
		BarberServiceID: req.BarberServiceID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		StartAt:         req.StartAt,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAppointmentView(*appointment))
}
