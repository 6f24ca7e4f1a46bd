package handler

import (
	"net/http"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler holds dependencies for the admin chat assistant.
type AssistantHandler struct {
	uc usecase.AssistantUsecase
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

type askInput struct {
	Message string `json:"message" validate:"required"`
}

// Ask answers one message and appends the exchange to the transcript.
func (h *AssistantHandler) Ask(c echo.Context) error {
	var input *askInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Xabar matnini kiriting")
	}

	answer, err := h.uc.Ask(c.Request().Context(), input.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answer, "")
}

// History returns the session transcript, oldest first.
func (h *AssistantHandler) History(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.History(), "")
}

// Reset clears the transcript.
func (h *AssistantHandler) Reset(c echo.Context) error {
	h.uc.Reset()

	return response.Success(c, http.StatusOK, nil, "History cleared")
}
