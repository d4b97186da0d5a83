package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cruisevoyager/infras/otel/mocks"
	"cruisevoyager/shared/constant"
	"cruisevoyager/transport/http/middleware"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionManager() *scs.SessionManager {
	sessions := scs.New()
	sessions.Store = memstore.New()

	return sessions
}

func TestRequireUser_NoSession(t *testing.T) {
	sessions := newSessionManager()
	auth := middleware.NewAuthMiddleware(sessions, mocks.NewOtel())

	handler := sessions.LoadAndSave(auth.RequireUser(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a session")
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authentication required")
}

func TestRequireUser_WithSession(t *testing.T) {
	sessions := newSessionManager()
	auth := middleware.NewAuthMiddleware(sessions, mocks.NewOtel())

	var seenUserID string

	gated := auth.RequireUser(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenUserID, _ = request.Context().Value(constant.ContextKeyUserID).(string)
		writer.WriteHeader(http.StatusOK)
	}))

	login := sessions.LoadAndSave(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sessions.Put(request.Context(), constant.SessionKeyUserID, "user-1")
		writer.WriteHeader(http.StatusOK)
	}))

	loginRecorder := httptest.NewRecorder()
	login.ServeHTTP(loginRecorder, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

	cookies := loginRecorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	request := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	sessions.LoadAndSave(gated).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-1", seenUserID)
}
