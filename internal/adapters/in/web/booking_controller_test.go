package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeBooking struct {
	salon       *domain.Salon
	barbers     []domain.Barber
	slots       []domain.AvailabilitySlot
	bookedInput *domain.BookingInput
	bookErr     error
}

func (f *fakeBooking) Salon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error) {
	if f.salon == nil {
		return nil, &domain.APIError{Status: http.StatusNotFound, Message: "salon not found"}
	}
	return f.salon, nil
}

func (f *fakeBooking) Barbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error) {
	return f.barbers, nil
}

func (f *fakeBooking) BarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, error) {
	return []domain.BarberService{}, nil
}

func (f *fakeBooking) Availability(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error) {
	if f.slots == nil {
		return []domain.AvailabilitySlot{}, nil
	}
	return f.slots, nil
}

func (f *fakeBooking) Book(ctx context.Context, in domain.BookingInput) (*domain.Appointment, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.bookedInput = &in
	return &domain.Appointment{
		ID:           uuid.New(),
		BarberID:     in.BarberID,
		CustomerName: in.CustomerName,
		StartAt:      in.StartAt,
		Status:       domain.AppointmentStatusPending,
	}, nil
}

func bookingRouter(useCase *fakeBooking) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingController(useCase).RegisterRoutes(router)
	return router
}

func TestGetSalonRendersCamelCase(t *testing.T) {
	salonID := uuid.New()
	router := bookingRouter(&fakeBooking{
		salon: &domain.Salon{ID: salonID, Name: "Figaro", Timezone: "Europe/Belgrade", Currency: "RSD"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/salons/"+salonID.String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.Code)
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"name":"Figaro"`) {
		t.Errorf("body missing salon name: %s", body)
	}
	if strings.Contains(body, "created_at") || strings.Contains(body, "salon_id") {
		t.Errorf("snake_case leaked into the view: %s", body)
	}
}

func TestGetSalonInvalidIDRejected(t *testing.T) {
	router := bookingRouter(&fakeBooking{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/salons/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.Code)
	}
}

func TestGetSalonPassesBackendStatusThrough(t *testing.T) {
	router := bookingRouter(&fakeBooking{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/salons/"+uuid.New().String(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status %d, want the backend's 404", resp.Code)
	}
}

func TestBookValidPayload(t *testing.T) {
	useCase := &fakeBooking{}
	router := bookingRouter(useCase)

	payload := map[string]interface{}{
		"salonId":         uuid.New().String(),
		"barberId":        uuid.New().String(),
		"barberServiceId": uuid.New().String(),
		"customerName":    "Marko",
		"customerPhone":   "0641234567",
		"startAt":         "2026-09-07T10:00:00Z",
	}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/appointments", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", resp.Code, resp.Body.String())
	}
	if useCase.bookedInput == nil {
		t.Fatal("use case not called")
	}
	if useCase.bookedInput.CustomerName != "Marko" {
		t.Errorf("customer %q", useCase.bookedInput.CustomerName)
	}
}

func TestBookMissingPhoneRejectedAtBinding(t *testing.T) {
	useCase := &fakeBooking{}
	router := bookingRouter(useCase)

	payload := map[string]interface{}{
		"salonId":         uuid.New().String(),
		"barberId":        uuid.New().String(),
		"barberServiceId": uuid.New().String(),
		"customerName":    "Marko",
		"startAt":         "2026-09-07T10:00:00Z",
	}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/appointments", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.Code)
	}
	if useCase.bookedInput != nil {
		t.Error("use case must not be reached when binding fails")
	}
}

func TestGetAvailabilityRendersBareInstants(t *testing.T) {
	start := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
	router := bookingRouter(&fakeBooking{
		slots: []domain.AvailabilitySlot{{Start: start, End: start.Add(30 * time.Minute)}},
	})

	url := "/api/v1/public/barbers/" + uuid.New().String() +
		"/availability?serviceId=" + uuid.New().String() + "&date=2026-09-07"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", resp.Code, resp.Body.String())
	}

	body := resp.Body.String()
	if !strings.Contains(body, `"start":"2026-09-07T08:00:00Z"`) {
		t.Errorf("slot start missing or reformatted: %s", body)
	}
	if strings.Contains(body, "label") {
		t.Errorf("slots must not carry pre-formatted labels: %s", body)
	}
}

func TestListBarbersAlwaysArray(t *testing.T) {
	router := bookingRouter(&fakeBooking{barbers: []domain.Barber{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/salons/"+uuid.New().String()+"/barbers", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"barbers":[]`) {
		t.Errorf("empty roster must render as [], got %s", resp.Body.String())
	}
}
