package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gearshare/internal/middleware"
	"gearshare/internal/models"
	"gearshare/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	createFn       func(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	getByIDFn      func(ctx context.Context, id, userID uint) (*models.Booking, error)
	updateStatusFn func(ctx context.Context, id, userID uint, approved bool) (*models.Booking, error)
	listByBookerFn func(ctx context.Context, bookerID uint, state models.State, from, size int) ([]models.Booking, int64, error)
	listByOwnerFn  func(ctx context.Context, ownerID uint, state models.State, from, size int) ([]models.Booking, int64, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	booking.ID = 1
	booking.Status = models.StatusWaiting
	return booking, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id, userID uint) (*models.Booking, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, userID)
	}
	return &models.Booking{ID: id, Status: models.StatusWaiting}, nil
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id, userID uint, approved bool) (*models.Booking, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, userID, approved)
	}
	return &models.Booking{ID: id, Status: models.StatusApproved}, nil
}

func (m *mockBookingService) ListByBooker(ctx context.Context, bookerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
	if m.listByBookerFn != nil {
		return m.listByBookerFn(ctx, bookerID, state, from, size)
	}
	return []models.Booking{}, 0, nil
}

func (m *mockBookingService) ListByOwner(ctx context.Context, ownerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID, state, from, size)
	}
	return []models.Booking{}, 0, nil
}

func (m *mockBookingService) GetByItemID(ctx context.Context, itemID uint, status models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (m *mockBookingService) LastBooking(ctx context.Context, itemID uint) (*models.Booking, error) {
	return nil, nil
}

func (m *mockBookingService) NextBooking(ctx context.Context, itemID uint) (*models.Booking, error) {
	return nil, nil
}

func newBookingApp(svc *mockBookingService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	NewBookingHandler(svc).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	var received *models.Booking
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
			received = booking
			booking.ID = 7
			booking.Status = models.StatusWaiting
			return booking, nil
		},
	}
	e := newBookingApp(svc)

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	body := `{"itemId": 5, "start": "` + start + `", "end": "` + end + `"}`

	rec := doRequest(e, http.MethodPost, "/bookings", body, "2")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, received)
	assert.Equal(t, uint(5), received.ItemID)
	assert.Equal(t, uint(2), received.BookerID, "booker comes from the identity header")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, "WAITING", resp["status"])
}

func TestCreateBookingEndpoint_MissingHeader(t *testing.T) {
	e := newBookingApp(&mockBookingService{})

	rec := doRequest(e, http.MethodPost, "/bookings", `{"itemId": 5}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingEndpoint_MissingFields(t *testing.T) {
	e := newBookingApp(&mockBookingService{})

	rec := doRequest(e, http.MethodPost, "/bookings", `{"itemId": 5}`, "2")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookingsEndpoint_UnknownState(t *testing.T) {
	serviceCalled := false
	svc := &mockBookingService{
		listByBookerFn: func(ctx context.Context, bookerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
			serviceCalled = true
			return nil, 0, nil
		},
	}
	e := newBookingApp(svc)

	rec := doRequest(e, http.MethodGet, "/bookings?state=BOGUS", "", "2")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown state: BOGUS")
	assert.False(t, serviceCalled)
}

func TestListBookingsEndpoint_Defaults(t *testing.T) {
	var gotState models.State
	var gotFrom, gotSize int
	svc := &mockBookingService{
		listByBookerFn: func(ctx context.Context, bookerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
			gotState, gotFrom, gotSize = state, from, size
			return []models.Booking{{ID: 1}, {ID: 2}}, 12, nil
		},
	}
	e := newBookingApp(svc)

	rec := doRequest(e, http.MethodGet, "/bookings", "", "2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StateAll, gotState)
	assert.Equal(t, 0, gotFrom)
	assert.Equal(t, 10, gotSize)
	assert.Equal(t, "12", rec.Header().Get("X-Total-Count"))

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListBookingsEndpoint_InvalidPaging(t *testing.T) {
	e := newBookingApp(&mockBookingService{})

	for _, target := range []string{"/bookings?from=-1", "/bookings?size=0", "/bookings?size=abc"} {
		rec := doRequest(e, http.MethodGet, target, "", "2")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestOwnerBookingsEndpoint(t *testing.T) {
	var gotOwner uint
	svc := &mockBookingService{
		listByOwnerFn: func(ctx context.Context, ownerID uint, state models.State, from, size int) ([]models.Booking, int64, error) {
			gotOwner = ownerID
			return []models.Booking{}, 0, nil
		},
	}
	e := newBookingApp(svc)

	rec := doRequest(e, http.MethodGet, "/bookings/owner?state=WAITING", "", "1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(1), gotOwner)
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	var gotApproved bool
	svc := &mockBookingService{
		updateStatusFn: func(ctx context.Context, id, userID uint, approved bool) (*models.Booking, error) {
			gotApproved = approved
			return &models.Booking{ID: id, Status: models.StatusApproved}, nil
		},
	}
	e := newBookingApp(svc)

	rec := doRequest(e, http.MethodPatch, "/bookings/5?approved=true", "", "1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotApproved)
	assert.Contains(t, rec.Body.String(), "APPROVED")
}

func TestUpdateBookingStatusEndpoint_MissingApproved(t *testing.T) {
	e := newBookingApp(&mockBookingService{})

	rec := doRequest(e, http.MethodPatch, "/bookings/5", "", "1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingEndpoint_ServiceErrorsMapped(t *testing.T) {
	svc := &mockBookingService{
		getByIDFn: func(ctx context.Context, id, userID uint) (*models.Booking, error) {
			return nil, service.NotFoundf("booking %d does not exist", id)
		},
	}
	e := newBookingApp(svc)

	rec := doRequest(e, http.MethodGet, "/bookings/99", "", "3")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])
}
