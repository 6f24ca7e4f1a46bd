package middleware

import (
	"net/http"

	"staradmin/internal/store"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware gates the admin API behind the gateway session. The
// gateway itself holds the bearer token for the upstream backend, so a
// request is authorized exactly when a session user is present.
type SessionMiddleware struct {
	state *store.State
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(state *store.State) *SessionMiddleware {
	return &SessionMiddleware{state: state}
}

// Authenticate rejects requests until an admin has logged in or the
// persisted session has been restored.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := m.state.User()
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Avval tizimga kiring"})
		}

		c.Set("user", user)

		return next(c)
	}
}
