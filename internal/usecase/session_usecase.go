// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"staradmin/internal/domain/entity"
)

// SessionUsecase defines the interface for admin session operations.
type SessionUsecase interface {
	// Login authenticates against the backend and rejects non-admin roles.
	Login(ctx context.Context, input *LoginInput) (entity.AdminUser, error)
	// Restore revives a session from the persisted bearer token, checking
	// local token expiry before calling the backend.
	Restore(ctx context.Context) (entity.AdminUser, error)
	// Logout clears the session, the token and every cached collection.
	Logout(ctx context.Context) error
	// Current returns the session user, if any.
	Current() (entity.AdminUser, bool)
}

// LoginInput defines the credentials accepted by the login form.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}
