package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"staradmin/config"
	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	url     string
	err     error
	gotName string
}

func (f *fakeUploader) Upload(_ context.Context, _ entity.UploadTicket, filename string, _ io.Reader) (string, error) {
	f.gotName = filename
	if f.err != nil {
		return "", f.err
	}

	return f.url, nil
}

func newUploadService(authRepo *fakeAuthRepo, uploader *fakeUploader) usecase.UploadUsecase {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return NewUploadService(cfg, authRepo, uploader, testNotifier(), testLogger())
}

func validTicket() entity.UploadTicket {
	return entity.UploadTicket{
		CloudName: "star", APIKey: "k", Timestamp: 1, Folder: "products",
		Signature: "s", UploadURL: "https://media.example/upload",
	}
}

func TestUploadImage_HappyPath(t *testing.T) {
	authRepo := &fakeAuthRepo{ticket: validTicket()}
	uploader := &fakeUploader{url: "https://cdn.example/a.png"}
	srv := newUploadService(authRepo, uploader)

	url, err := srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		Scope:       entity.ScopeProducts,
		Filename:    "a.png",
		ContentType: "image/png",
		Size:        1024,
		File:        strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.png", url)
	assert.Equal(t, "a.png", uploader.gotName)
	assert.Equal(t, 1, authRepo.signCalls)
}

func TestUploadImage_ValidatesBeforeSigning(t *testing.T) {
	authRepo := &fakeAuthRepo{ticket: validTicket()}
	srv := newUploadService(authRepo, &fakeUploader{})

	_, err := srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		ContentType: "application/pdf",
		Size:        100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAnImage)

	_, err = srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		ContentType: "image/png",
		Size:        10 << 20, // over the 3 MB default
	})
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)

	assert.Zero(t, authRepo.signCalls, "no backend call for invalid files")
}

func TestUploadImage_SigningFailure(t *testing.T) {
	authRepo := &fakeAuthRepo{signErr: errors.New("501 Not Implemented")}
	srv := newUploadService(authRepo, &fakeUploader{})

	_, err := srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		ContentType: "image/jpeg",
		Size:        100,
		File:        strings.NewReader("x"),
	})
	assert.Error(t, err)
}
