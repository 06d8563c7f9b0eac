package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehaven/venue-booking-backend/internal/auth"
	"github.com/venuehaven/venue-booking-backend/internal/blockedperiod"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
	"github.com/venuehaven/venue-booking-backend/internal/reservation"
	resHttp "github.com/venuehaven/venue-booking-backend/internal/reservation/http"
	"github.com/venuehaven/venue-booking-backend/internal/user"
	userHttp "github.com/venuehaven/venue-booking-backend/internal/user/http"
	"github.com/venuehaven/venue-booking-backend/internal/venue"
	venueHttp "github.com/venuehaven/venue-booking-backend/internal/venue/http"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	hasher := auth.NewBcryptPasswordHasherWithCost(4)
	jwtManager := auth.NewJWTManager("test-secret", 30*time.Minute)

	userService := user.NewService(user.NewMemoryRepository(), hasher)
	venueService := venue.NewService(venue.NewMemoryRepository())
	reservationService := reservation.NewService(
		booking.NewMemoryRepository(),
		blockedperiod.NewMemoryRepository(),
		venueService,
	)

	return NewRouter(Config{
		UserService:        userService,
		VenueService:       venueService,
		ReservationService: reservationService,
		JWTManager:         jwtManager,
	})
}

func executeRequest(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email, role string) (userHttp.UserResponse, string) {
	t.Helper()

	w := executeRequest(router, "POST", "/v1/auth/register", gin.H{
		"name":     email,
		"email":    email,
		"password": "password123",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp userHttp.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User, resp.Token
}

func createVenue(t *testing.T, router *gin.Engine, token string) venueHttp.VenueResponse {
	t.Helper()

	w := executeRequest(router, "POST", "/v1/venues", gin.H{
		"name":          "Harbor Loft",
		"description":   "Waterfront event space",
		"capacity":      80,
		"location":      "Pier 12",
		"price_per_day": "150",
		"amenities":     []string{"wifi", "stage"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp venueHttp.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func day(n int) string {
	return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n).Format(time.RFC3339)
}

func TestBookingFlow(t *testing.T) {
	router := newTestRouter()

	_, ownerToken := registerUser(t, router, "owner@flow.com", "owner")
	_, customerToken := registerUser(t, router, "customer@flow.com", "customer")

	v := createVenue(t, router, ownerToken)

	var bookingID string

	t.Run("Customer books venue", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/bookings", gin.H{
			"venue_id":   v.ID,
			"start_date": day(0),
			"end_date":   day(2),
		}, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp resHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "confirmed", resp.Status)
		assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(300)), "got %s", resp.TotalPrice)
		bookingID = resp.ID
	})

	t.Run("Overlapping booking returns conflict payload", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/bookings", gin.H{
			"venue_id":   v.ID,
			"start_date": day(1),
			"end_date":   day(3),
		}, customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var resp struct {
			Error     string                    `json:"error"`
			Conflicts resHttp.ConflictsResponse `json:"conflicts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Conflicts.Bookings, 1)
		assert.Equal(t, bookingID, resp.Conflicts.Bookings[0].ID)
		assert.Empty(t, resp.Conflicts.BlockedPeriods)
	})

	t.Run("Back-to-back booking is accepted", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/bookings", gin.H{
			"venue_id":   v.ID,
			"start_date": day(2),
			"end_date":   day(4),
		}, customerToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("Inverted range is rejected", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/bookings", gin.H{
			"venue_id":   v.ID,
			"start_date": day(6),
			"end_date":   day(6),
		}, customerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("Customer lists own bookings newest start first", func(t *testing.T) {
		w := executeRequest(router, "GET", "/v1/bookings/my", nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []resHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.True(t, items[0].StartDate.After(items[1].StartDate))
	})

	t.Run("Owner lists venue bookings earliest start first", func(t *testing.T) {
		w := executeRequest(router, "GET", "/v1/venues/"+v.ID+"/bookings", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []resHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.True(t, items[0].StartDate.Before(items[1].StartDate))
	})

	t.Run("Customer cancels booking", func(t *testing.T) {
		w := executeRequest(router, "PATCH", "/v1/bookings/"+bookingID, gin.H{"status": "cancelled"}, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp resHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "cancelled", resp.Status)
	})
}

func TestAvailabilityEndpoint(t *testing.T) {
	router := newTestRouter()

	_, ownerToken := registerUser(t, router, "owner@avail.com", "owner")
	_, customerToken := registerUser(t, router, "customer@avail.com", "customer")
	v := createVenue(t, router, ownerToken)

	w := executeRequest(router, "POST", "/v1/bookings", gin.H{
		"venue_id":   v.ID,
		"start_date": day(3),
		"end_date":   day(5),
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Free range", func(t *testing.T) {
		w := executeRequest(router, "GET", "/v1/venues/"+v.ID+"/availability?start="+day(5)+"&end="+day(7), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp resHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsAvailable)
	})

	t.Run("Occupied range reports conflicts", func(t *testing.T) {
		w := executeRequest(router, "GET", "/v1/venues/"+v.ID+"/availability?start="+day(4)+"&end="+day(6), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp resHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.IsAvailable)
		assert.Len(t, resp.Conflicts.Bookings, 1)
	})

	t.Run("Missing query params rejected", func(t *testing.T) {
		w := executeRequest(router, "GET", "/v1/venues/"+v.ID+"/availability", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlockDatesEndpoint(t *testing.T) {
	router := newTestRouter()

	_, ownerToken := registerUser(t, router, "owner@block.com", "owner")
	_, customerToken := registerUser(t, router, "customer@block.com", "customer")
	v := createVenue(t, router, ownerToken)

	t.Run("Owner blocks dates", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/venues/"+v.ID+"/block", gin.H{
			"start_date": day(10),
			"end_date":   day(12),
			"reason":     "maintenance",
		}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp resHttp.BlockedPeriodResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "maintenance", resp.Reason)
	})

	t.Run("Overlapping block is tolerated", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/venues/"+v.ID+"/block", gin.H{
			"start_date": day(11),
			"end_date":   day(14),
			"reason":     "still maintenance",
		}, ownerToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("Booking vetoes block", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/bookings", gin.H{
			"venue_id":   v.ID,
			"start_date": day(20),
			"end_date":   day(22),
		}, customerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		w = executeRequest(router, "POST", "/v1/venues/"+v.ID+"/block", gin.H{
			"start_date": day(21),
			"end_date":   day(25),
			"reason":     "too late",
		}, ownerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		var resp struct {
			Conflicts resHttp.ConflictsResponse `json:"conflicts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Conflicts.Bookings, 1)
	})

	t.Run("Customer cannot block", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/venues/"+v.ID+"/block", gin.H{
			"start_date": day(30),
			"end_date":   day(31),
		}, customerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRoleAndAuthGating(t *testing.T) {
	router := newTestRouter()

	_, customerToken := registerUser(t, router, "customer@gate.com", "customer")

	t.Run("Venue list is public", func(t *testing.T) {
		w := executeRequest(router, "GET", "/v1/venues", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Customer cannot create venue", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/venues", gin.H{
			"name":          "Nope",
			"price_per_day": "10",
		}, customerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Booking requires auth", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/bookings", gin.H{}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/v1/bookings/my", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Register rejects bad role", func(t *testing.T) {
		w := executeRequest(router, "POST", "/v1/auth/register", gin.H{
			"name":     "x",
			"email":    "x@gate.com",
			"password": "password123",
			"role":     "admin",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
