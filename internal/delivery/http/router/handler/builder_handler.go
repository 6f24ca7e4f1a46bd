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

// BuilderHandler holds dependencies for the storefront layout editor.
type BuilderHandler struct {
	uc     usecase.BuilderUsecase
	logger *slog.Logger
}

// NewBuilderHandler is the constructor for BuilderHandler, injected by Fx.
func NewBuilderHandler(uc usecase.BuilderUsecase, logger *slog.Logger) *BuilderHandler {
	return &BuilderHandler{uc: uc, logger: logger}
}

// Sections returns the cached sections of one page in render order.
func (h *BuilderHandler) Sections(c echo.Context) error {
	page := c.QueryParam("page")
	if page == "" {
		page = "home"
	}

	return response.Success(c, http.StatusOK, h.uc.Sections(page), "")
}

// Pages lists the known page slugs, home first.
func (h *BuilderHandler) Pages(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Pages(), "")
}

type addPageInput struct {
	Name string `json:"name" validate:"required"`
}

// AddPage registers a new page slug derived from the given name.
func (h *BuilderHandler) AddPage(c echo.Context) error {
	var input *addPageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Sahifa nomini kiriting")
	}

	slug, err := h.uc.AddPage(c.Request().Context(), input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"page": slug}, "Page created")
}

// DeletePage removes a page and every section on it.
func (h *BuilderHandler) DeletePage(c echo.Context) error {
	if err := h.uc.DeletePage(c.Request().Context(), c.Param("page")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Page deleted")
}

type addSectionInput struct {
	Page        string `json:"page" validate:"required"`
	SectionType string `json:"section_type" validate:"required"`
	InsertIndex *int   `json:"insert_index"`
}

// AddSection inserts a new section of the given type on a page.
func (h *BuilderHandler) AddSection(c echo.Context) error {
	var input *addSectionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid section input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Sahifa va bo'lim turini kiriting")
	}

	insertIndex := -1
	if input.InsertIndex != nil {
		insertIndex = *input.InsertIndex
	}

	section, err := h.uc.AddSection(c.Request().Context(), input.Page, entity.SectionType(input.SectionType), insertIndex)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, section, "Section added")
}

// UpdateSection persists edited section data.
func (h *BuilderHandler) UpdateSection(c echo.Context) error {
	var input *usecase.UpdateSectionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid section input")
	}
	input.ID = c.Param("id")
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Bo'lim identifikatori yetishmayapti")
	}

	section, err := h.uc.UpdateSection(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, section, "Section updated")
}

// DeleteSection removes one section.
func (h *BuilderHandler) DeleteSection(c echo.Context) error {
	if err := h.uc.DeleteSection(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Section deleted")
}

type moveSectionInput struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// MoveSection swaps a section with its neighbour and renumbers the page.
func (h *BuilderHandler) MoveSection(c echo.Context) error {
	var input *moveSectionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Yo'nalish up yoki down bo'lishi kerak")
	}

	if err := h.uc.MoveSection(c.Request().Context(), c.Param("id"), usecase.MoveDirection(input.Direction)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Section moved")
}

// Message dispatches one structural command posted by the embedded
// storefront preview.
func (h *BuilderHandler) Message(c echo.Context) error {
	var msg *usecase.BuilderMessage
	if err := c.Bind(&msg); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid builder message")
	}
	if err := c.Validate(msg); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Builder xabari noto'g'ri")
	}

	if err := h.uc.HandleMessage(c.Request().Context(), msg); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message handled")
}

// PreviewURL returns the persisted storefront preview address.
func (h *BuilderHandler) PreviewURL(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"url": h.uc.PreviewURL()}, "")
}

type previewURLInput struct {
	URL string `json:"url" validate:"required"`
}

// SetPreviewURL persists a new preview address.
func (h *BuilderHandler) SetPreviewURL(c echo.Context) error {
	var input *previewURLInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview URL input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Manzilni kiriting")
	}

	if err := h.uc.SetPreviewURL(c.Request().Context(), input.URL); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": h.uc.PreviewURL()}, "Preview URL saved")
}

// PreviewQR renders the preview address as a QR PNG for phones.
func (h *BuilderHandler) PreviewQR(c echo.Context) error {
	png, err := h.uc.PreviewQR()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
