package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/infras/kafka"
	"cruisevoyager/infras/mailer"
	"cruisevoyager/infras/otel/mocks"
	"cruisevoyager/infras/payment"
	"cruisevoyager/infras/session"
	authRepository "cruisevoyager/internal/domains/auth/repository"
	authService "cruisevoyager/internal/domains/auth/service"
	bookingRepository "cruisevoyager/internal/domains/booking/repository"
	bookingService "cruisevoyager/internal/domains/booking/service"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	cruiseRepository "cruisevoyager/internal/domains/cruise/repository"
	cruiseService "cruisevoyager/internal/domains/cruise/service"
	notificationService "cruisevoyager/internal/domains/notification/service"
	paymentService "cruisevoyager/internal/domains/payment/service"
	reviewRepository "cruisevoyager/internal/domains/review/repository"
	reviewService "cruisevoyager/internal/domains/review/service"
	userRepository "cruisevoyager/internal/domains/user/repository"
	authHandler "cruisevoyager/internal/handlers/auth"
	bookingHandler "cruisevoyager/internal/handlers/booking"
	cruiseHandler "cruisevoyager/internal/handlers/cruise"
	paymentHandler "cruisevoyager/internal/handlers/payment"
	cacheMocks "cruisevoyager/shared/cache/mocks"
	transportHttp "cruisevoyager/transport/http"
	"cruisevoyager/transport/http/middleware"
	"cruisevoyager/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer assembles the full HTTP surface over memory storage, the
// offline payment provider and a process-memory session store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.CookieName = "cruise_session"
	cfg.Session.LifetimeMinutes = 60
	cfg.Stripe.Currency = "usd"

	otl := mocks.NewOtel()
	redisCache := cacheMocks.NewRedisCache()
	sessions := session.New(cfg, nil)

	users := userRepository.NewMemory()
	tokens := authRepository.NewMemory()
	cruises := cruiseRepository.NewMemory()
	reviews := reviewRepository.NewMemory()
	bookings := bookingRepository.NewMemory()

	salePrice := 800.0
	require.NoError(t, cruises.Insert(context.Background(), cruiseModel.Cruise{
		ID:             "caribbean",
		Title:          "Caribbean Paradise",
		Destination:    "Caribbean",
		DepartureDate:  time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
		Duration:       7,
		PricePerPerson: 899,
		SalePrice:      &salePrice,
	}))

	notif := notificationService.New(mailer.New(cfg, otl), cfg, otl)
	producer := kafka.New(cfg)
	provider := payment.NewOfflineProvider()

	authSvc := authService.New(users, tokens, notif, cfg, otl)
	cruiseSvc := cruiseService.New(cruises, reviews, cfg, redisCache, otl)
	reviewSvc := reviewService.New(reviews, cruises, cfg, redisCache, otl)
	bookingSvc := bookingService.New(bookings, cruises, reviews, notif, producer, cfg, otl)
	paymentSvc := paymentService.New(bookings, provider, producer, cfg, otl)

	authMiddleware := middleware.NewAuthMiddleware(sessions, otl)
	appMiddleware := middleware.NewAppMiddleware(otl, cfg, redisCache)

	domainRouter := router.New(router.DomainHandlers{
		Auth:    authHandler.New(authSvc, sessions, authMiddleware, otl),
		Cruise:  cruiseHandler.New(cruiseSvc, reviewSvc, authMiddleware, otl),
		Booking: bookingHandler.New(bookingSvc, authMiddleware, otl),
		Payment: paymentHandler.New(paymentSvc, authMiddleware, otl),
	})

	server := httptest.NewServer(transportHttp.New(cfg, domainRouter, appMiddleware, sessions).Handler())
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	res, err := client.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)

	return res
}

func decodeData(t *testing.T, res *http.Response, out any) {
	t.Helper()

	defer res.Body.Close()

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestBookingCheckoutFlow(t *testing.T) {
	server := newTestServer(t)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := &http.Client{Jar: jar}

	// An anonymous visitor can browse but not book.
	res, err := client.Get(server.URL + "/api/cruises")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = postJSON(t, client, server.URL+"/api/bookings", map[string]any{})
	res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, err = client.Get(server.URL + "/api/auth/user")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Registration opens a session via the cookie jar.
	res = postJSON(t, client, server.URL+"/api/auth/register", map[string]any{
		"username":  "demo",
		"email":     "demo@example.com",
		"password":  "password123",
		"firstName": "Demo",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var user struct {
		ID string `json:"id"`
	}
	decodeData(t, res, &user)
	require.NotEmpty(t, user.ID)

	// The session now answers for the current user.
	res, err = client.Get(server.URL + "/api/auth/user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var current struct {
		ID string `json:"id"`
	}
	decodeData(t, res, &current)
	assert.Equal(t, user.ID, current.ID)

	// Book two guests at the 800 sale price.
	res = postJSON(t, client, server.URL+"/api/bookings", map[string]any{
		"cruiseId":       "caribbean",
		"numberOfGuests": 2,
		"cabinType":      "Balcony",
		"contactEmail":   "demo@example.com",
		"passengers": []map[string]any{
			{"firstName": "Alice", "lastName": "Doe", "dateOfBirth": "1990-01-01", "nationality": "US"},
			{"firstName": "Bob", "lastName": "Doe", "dateOfBirth": "1988-05-05", "nationality": "US"},
		},
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var booking struct {
		ID            string  `json:"id"`
		TotalPrice    float64 `json:"totalPrice"`
		PaymentStatus string  `json:"paymentStatus"`
	}
	decodeData(t, res, &booking)
	require.NotEmpty(t, booking.ID)
	assert.InDelta(t, 1600.0, booking.TotalPrice, 0.001)
	assert.Equal(t, "pending", booking.PaymentStatus)

	res = postJSON(t, client, server.URL+"/api/create-payment-intent", map[string]any{
		"bookingId": booking.ID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var intent struct {
		ClientSecret string `json:"clientSecret"`
	}
	decodeData(t, res, &intent)
	assert.NotEmpty(t, intent.ClientSecret)

	// The processor confirms the payment asynchronously.
	webhook := fmt.Sprintf(`{
		"id": "evt_1",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_1", "metadata": {"bookingId": %q}}}
	}`, booking.ID)

	res, err = client.Post(server.URL+"/api/stripe-webhook", "application/json", bytes.NewReader([]byte(webhook)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var ack struct {
		Received bool `json:"received"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&ack))
	res.Body.Close()
	assert.True(t, ack.Received)

	res, err = client.Get(server.URL + "/api/bookings/" + booking.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var paid struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	decodeData(t, res, &paid)
	assert.Equal(t, "completed", paid.PaymentStatus)
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	res, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)

	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
