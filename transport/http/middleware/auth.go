package middleware

import (
	"context"
	"net/http"

	"cruisevoyager/infras/otel"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"
	"cruisevoyager/transport/http/response"

	"github.com/alexedwards/scs/v2"
)

// Auth gates routes behind a valid cookie session.
type Auth interface {
	RequireUser(next http.Handler) http.Handler
}

type authImpl struct {
	sessions *scs.SessionManager
	otel     otel.Otel
}

func NewAuthMiddleware(sessions *scs.SessionManager, otel otel.Otel) Auth {
	return &authImpl{
		sessions: sessions,
		otel:     otel,
	}
}

// RequireUser rejects requests without an authenticated session and
// propagates the session's user ID through the request context.
func (m *authImpl) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		userID := m.sessions.GetString(ctx, constant.SessionKeyUserID)
		if userID == constant.Empty {
			err := failure.Unauthorized("Authentication required")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
