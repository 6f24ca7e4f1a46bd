package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"staradmin/config"
	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/repository"
	"staradmin/internal/domain/service"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	authRepo repository.AuthRepository
	uploader service.MediaUploader
	notifier *store.Notifier
	logger   *slog.Logger
	maxBytes int64
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(
	cfg *config.Config,
	authRepo repository.AuthRepository,
	uploader service.MediaUploader,
	notifier *store.Notifier,
	logger *slog.Logger,
) usecase.UploadUsecase {
	return &uploadService{
		authRepo: authRepo,
		uploader: uploader,
		notifier: notifier,
		logger:   logger,
		maxBytes: cfg.MaxImageBytes(),
	}
}

// UploadImage validates the file locally, asks the backend to sign the
// upload, then posts the file directly to the media host. Validation
// runs before any network call.
func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return "", domainerrors.ErrNotAnImage
	}
	if input.Size > srv.maxBytes {
		return "", domainerrors.ErrImageTooLarge.WithDetails(
			fmt.Sprintf("%d bytes over the %d byte limit", input.Size-srv.maxBytes, srv.maxBytes))
	}

	scope := input.Scope
	if scope == "" {
		scope = entity.ScopeGeneral
	}

	ticket, err := srv.authRepo.SignUpload(ctx, scope)
	if err != nil {
		srv.logger.ErrorContext(ctx, "upload signing failed", slog.String("scope", string(scope)), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Rasm yuklanmadi: %s", rootMessage(err)))

		return "", err
	}

	url, err := srv.uploader.Upload(ctx, ticket, input.Filename, input.File)
	if err != nil {
		srv.logger.ErrorContext(ctx, "media upload failed", slog.String("filename", input.Filename), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Rasm yuklanmadi: %s", rootMessage(err)))

		return "", err
	}

	srv.notifier.Push(entity.NotifySuccess, "", "Rasm yuklandi.")

	return url, nil
}
