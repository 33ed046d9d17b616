package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
)

type notificationResponse struct {
	DocID string `json:"docId"`
	model.Notification
}

func (h *Handler) ListNotifications(c echo.Context) error {
	list, err := h.svc.ListNotifications(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	resp := make([]notificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, notificationResponse{DocID: n.DocID, Notification: n})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	if err := h.svc.MarkNotificationRead(c.Request().Context(), actorFrom(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) MarkAllNotificationsRead(c echo.Context) error {
	if err := h.svc.MarkAllNotificationsRead(c.Request().Context(), actorFrom(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetDashboard(c echo.Context) error {
	dash, err := h.svc.GetDashboard(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dash)
}
