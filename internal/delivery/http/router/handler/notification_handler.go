package handler

import (
	"net/http"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the toast queue, the inbox
// and the local activity log.
type NotificationHandler struct {
	uc   usecase.NotificationUsecase
	sync usecase.SyncUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, sync usecase.SyncUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc, sync: sync}
}

// Toasts returns the live toast queue.
func (h *NotificationHandler) Toasts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Toasts(), "")
}

// DismissToast drops one toast before its TTL expires.
func (h *NotificationHandler) DismissToast(c echo.Context) error {
	h.uc.DismissToast(c.Param("id"))

	return response.Success(c, http.StatusOK, nil, "Toast dismissed")
}

// Inbox returns the persistent notification inbox.
func (h *NotificationHandler) Inbox(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": h.uc.Inbox(),
		"unread":        h.uc.UnreadCount(),
	}, "")
}

// MarkRead flags one inbox notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	h.uc.MarkRead(c.Param("id"))

	return response.Success(c, http.StatusOK, nil, "Notification read")
}

// MarkAllRead flags every inbox notification as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	h.uc.MarkAllRead()

	return response.Success(c, http.StatusOK, nil, "All notifications read")
}

// ClearInbox empties the inbox.
func (h *NotificationHandler) ClearInbox(c echo.Context) error {
	h.uc.ClearInbox()

	return response.Success(c, http.StatusOK, nil, "Inbox cleared")
}

// Activity returns the local audit log, newest first.
func (h *NotificationHandler) Activity(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Activity(), "")
}

// ClearActivity empties the audit log.
func (h *NotificationHandler) ClearActivity(c echo.Context) error {
	h.uc.ClearActivity()

	return response.Success(c, http.StatusOK, nil, "Activity cleared")
}

// ExportActivityCSV streams the audit log as a CSV download.
func (h *NotificationHandler) ExportActivityCSV(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="activity.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	return errors.WithStack(h.uc.ExportActivityCSV(c.Response()))
}

// RefreshAll forces one poll cycle outside the background schedule.
// Partial failure still refreshes what it can, so it reports a warning
// rather than an error status.
func (h *NotificationHandler) RefreshAll(c echo.Context) error {
	if err := h.sync.RefreshAll(c.Request().Context()); err != nil {
		return response.Success(c, http.StatusOK, map[string]string{"warning": err.Error()}, "Partial refresh")
	}

	return response.Success(c, http.StatusOK, nil, "Data refreshed")
}
