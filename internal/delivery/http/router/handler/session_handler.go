package handler

import (
	"log/slog"
	"net/http"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// Login handles the admin login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Login va parolni kiriting")
	}

	user, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Login successful")
}

// Restore revives the session from the persisted bearer token.
func (h *SessionHandler) Restore(c echo.Context) error {
	user, err := h.uc.Restore(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Session restored")
}

// Logout clears the session and the cached working set.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the current session user.
func (h *SessionHandler) Me(c echo.Context) error {
	user, ok := h.uc.Current()
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Avval tizimga kiring")
	}

	return response.Success(c, http.StatusOK, user, "")
}
