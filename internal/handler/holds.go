package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
)

type placeHoldRequest struct {
	BookDocID string `json:"bookDocId" validate:"required"`
}

type holdResponse struct {
	DocID string `json:"docId"`
	model.Hold
}

func (h *Handler) PlaceHold(c echo.Context) error {
	var req placeHoldRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	holdDocID, err := h.svc.PlaceHold(c.Request().Context(), actorFrom(c), req.BookDocID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"docId": holdDocID})
}

func (h *Handler) CancelHold(c echo.Context) error {
	if err := h.svc.CancelHold(c.Request().Context(), actorFrom(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) FulfillHold(c echo.Context) error {
	hold, err := h.svc.FulfillHold(c.Request().Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, holdResponse{DocID: hold.DocID, Hold: hold})
}

func (h *Handler) ListHolds(c echo.Context) error {
	holds, err := h.svc.ListHolds(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	resp := make([]holdResponse, 0, len(holds))
	for _, hd := range holds {
		resp = append(resp, holdResponse{DocID: hd.DocID, Hold: hd})
	}
	return c.JSON(http.StatusOK, resp)
}
