// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/repository"
	"staradmin/internal/infra/prefs"
	"staradmin/internal/store"
	"staradmin/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authRepo repository.AuthRepository
	state    *store.State
	notifier *store.Notifier
	activity *store.ActivityLog
	prefs    *prefs.Store
	logger   *slog.Logger
	now      func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authRepo repository.AuthRepository,
	state *store.State,
	notifier *store.Notifier,
	activity *store.ActivityLog,
	prefsStore *prefs.Store,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authRepo: authRepo,
		state:    state,
		notifier: notifier,
		activity: activity,
		prefs:    prefsStore,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates against the backend and rejects non-admin roles.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (entity.AdminUser, error) {
	user, token, err := srv.authRepo.Login(ctx, input.Login, input.Password)
	if err != nil {
		srv.logger.WarnContext(ctx, "login failed", slog.String("login", input.Login), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Kirish amalga oshmadi: %s", rootMessage(err)))

		return entity.AdminUser{}, err
	}

	if !user.IsAdmin() {
		srv.logger.WarnContext(ctx, "non-admin login rejected", slog.String("email", user.Email))
		srv.notifier.Push(entity.NotifyError, "", domainerrors.ErrNotAdmin.Message())

		return entity.AdminUser{}, domainerrors.ErrNotAdmin
	}

	if err := srv.prefs.Set(prefs.KeyAuthToken, token); err != nil {
		return entity.AdminUser{}, errors.Wrap(err, "persist auth token")
	}
	srv.state.SetUser(user)

	srv.activity.Record("Tizimga kirdi", user.Name, "", entity.ActivityOK, "lock")
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("Xush kelibsiz, %s!", user.Name))
	srv.logger.InfoContext(ctx, "admin logged in", slog.String("email", user.Email))

	return user, nil
}

// Restore revives a session from the persisted bearer token. An expired
// token is rejected locally without calling the backend.
func (srv *sessionService) Restore(ctx context.Context) (entity.AdminUser, error) {
	token := srv.prefs.Get(prefs.KeyAuthToken)
	if token == "" {
		return entity.AdminUser{}, domainerrors.ErrNotAuthenticated
	}

	if tokenExpired(token, srv.now()) {
		srv.logger.InfoContext(ctx, "stored token expired, clearing session")
		_ = srv.prefs.Delete(prefs.KeyAuthToken)

		return entity.AdminUser{}, domainerrors.ErrSessionInvalid
	}

	user, err := srv.authRepo.Me(ctx)
	if err != nil {
		srv.logger.WarnContext(ctx, "session restore rejected by backend", slog.Any("error", err))
		_ = srv.prefs.Delete(prefs.KeyAuthToken)

		return entity.AdminUser{}, domainerrors.ErrSessionInvalid
	}

	if !user.IsAdmin() {
		_ = srv.prefs.Delete(prefs.KeyAuthToken)

		return entity.AdminUser{}, domainerrors.ErrNotAdmin
	}

	srv.state.SetUser(user)
	srv.logger.InfoContext(ctx, "session restored", slog.String("email", user.Email))

	return user, nil
}

// Logout clears the session, the token and every cached collection.
func (srv *sessionService) Logout(ctx context.Context) error {
	user, _ := srv.state.User()

	if err := srv.prefs.Delete(prefs.KeyAuthToken); err != nil {
		return errors.Wrap(err, "clear auth token")
	}
	srv.state.ClearUser()
	srv.state.ClearAll()

	if user.Name != "" {
		srv.activity.Record("Tizimdan chiqdi", user.Name, "", entity.ActivityOK, "lock")
	}
	srv.notifier.Push(entity.NotifyInfo, "", "Tizimdan chiqildi.")
	srv.logger.InfoContext(ctx, "admin logged out")

	return nil
}

// Current returns the session user, if any.
func (srv *sessionService) Current() (entity.AdminUser, bool) {
	return srv.state.User()
}

// tokenExpired checks the token's exp claim without verifying the
// signature; verification is the backend's job. Opaque or claimless
// tokens pass through to the backend check.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}

// rootMessage unwraps to the innermost error message, which for backend
// failures is the normalized upstream message.
func rootMessage(err error) string {
	return errors.Cause(err).Error()
}

// actorName names the session user for audit rows.
func actorName(state *store.State) string {
	user, ok := state.User()
	if !ok {
		return "Admin"
	}

	return user.Name
}
