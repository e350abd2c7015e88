package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agencysite/models"
	"agencysite/services/analytics"
	"agencysite/services/booking"
	"agencysite/services/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	catalog models.PricingCatalog
}

func (s *stubCatalog) GetCatalog(ctx context.Context) (*models.PricingCatalog, error) {
	c := s.catalog
	return &c, nil
}

func (s *stubCatalog) UpdateCatalog(ctx context.Context, patch models.PricingUpdate) (*models.PricingCatalog, error) {
	return nil, &pricing.CatalogValidationError{Fields: map[string]string{"features[0].price": "price must not be negative"}}
}

func (s *stubCatalog) Estimate(ctx context.Context, sel models.Selection) (*models.EstimateResponse, error) {
	return &models.EstimateResponse{
		Estimate:       pricing.Calculate(s.catalog, sel),
		Currency:       s.catalog.Currency,
		CurrencySymbol: s.catalog.CurrencySymbol,
		Complete:       sel.IsComplete(),
	}, nil
}

type counter map[string]int64

func (m counter) Incr(ctx context.Context, key string) error { m[key]++; return nil }
func (m counter) Get(ctx context.Context, key string) (int64, error) {
	return m[key], nil
}

// stubBookings embeds the interface so tests only implement what they hit.
type stubBookings struct {
	booking.BookingService
	createErr error
}

func (s *stubBookings) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Booking{ID: "b-1", Name: req.Name, Status: models.BookingStatusPending}, nil
}

func (s *stubBookings) AvailableSlots(ctx context.Context, startDate string, days int) ([]models.SlotAvailability, error) {
	return []models.SlotAvailability{{Date: startDate, TimeSlot: "10:00-11:00", Capacity: days, IsAvailable: true, AvailableSpots: days}}, nil
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func pricingRouter(counts counter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := pricing.DefaultCatalog()
	h := NewPricingHandler(&stubCatalog{catalog: catalog}, analytics.NewCalculatorTracker(counts))
	r := gin.New()
	r.POST("/estimate", h.EstimateHandler)
	r.PUT("/pricing", h.UpdatePricingHandler)
	r.GET("/stats", h.CalculatorStatsHandler)
	return r
}

func TestEstimateHandler(t *testing.T) {
	counts := counter{}
	r := pricingRouter(counts)

	w := do(r, http.MethodPost, "/estimate", models.Selection{
		WebsiteType:  "Business Website",
		Technologies: []string{"React"},
		Features:     []string{"Admin Panel"},
		Timeline:     "7-15 days",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// (25000 + 15000 + 15000) * 1.5 = 82500
	assert.Equal(t, int64(74250), resp.Min)
	assert.Equal(t, int64(90750), resp.Max)
	assert.True(t, resp.Complete)
	assert.Equal(t, int64(1), counts["analytics:calculator:complete"])

	w = do(r, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"estimates":1,"complete_estimates":1}`, w.Body.String())
}

func TestUpdatePricingValidation(t *testing.T) {
	w := do(pricingRouter(counter{}), http.MethodPut, "/pricing", map[string]interface{}{
		"features": []models.PriceItem{{Name: "Chat", Price: -5}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "features[0].price")
}

func TestCreateBookingHandlerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"validation", &booking.ValidationError{Fields: map[string]string{"name": "too short", "email": "invalid"}}, http.StatusUnprocessableEntity},
		{"slot taken", booking.ErrSlotUnavailable, http.StatusConflict},
		{"inactive", booking.ErrBookingSystemInactive, http.StatusNotFound},
		{"store down", errors.Join(booking.ErrCollaboratorUnavailable, errors.New("timeout")), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewBookingHandler(&stubBookings{createErr: tc.err})
			r := gin.New()
			r.POST("/bookings", h.CreateBookingHandler)

			w := do(r, http.MethodPost, "/bookings", models.BookingRequest{Name: "Priya"})
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusUnprocessableEntity {
				var body struct {
					Fields map[string]string `json:"fields"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body.Fields, 2)
			}
		})
	}
}

func TestAvailableSlotsHandlerQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/slots", NewBookingHandler(&stubBookings{}).AvailableSlotsHandler)

	w := do(r, http.MethodGet, "/slots?start_date=2026-10-15&days=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Slots []models.SlotAvailability `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2026-10-15", body.Slots[0].Date)
	assert.Equal(t, 3, body.Slots[0].Capacity)

	w = do(r, http.MethodGet, "/slots?days=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
