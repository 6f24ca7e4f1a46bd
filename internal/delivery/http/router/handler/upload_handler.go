package handler

import (
	"log/slog"
	"net/http"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/domain/entity"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for admin image uploads.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

// UploadImage accepts one multipart image and relays it to the media
// host through the backend-signed ticket.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Fayl tanlanmagan")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open multipart file")
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Scope:       entity.UploadScope(c.FormValue("scope")),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		File:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
