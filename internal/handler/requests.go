package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
)

type checkoutRequestRequest struct {
	BookDocID string `json:"bookDocId" validate:"required"`
}

type approveRequest struct {
	PickupWindows []model.PickupWindow `json:"pickupWindows" validate:"required,min=3,dive"`
	PickupNotes   string               `json:"pickupNotes"`
}

type selectWindowRequest struct {
	SelectedWindowIndex *int `json:"selectedWindowIndex" validate:"required"`
}

type requestResponse struct {
	DocID string `json:"docId"`
	model.CheckoutRequest
}

func (h *Handler) RequestCheckout(c echo.Context) error {
	var req checkoutRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	docID, err := h.svc.RequestCheckout(c.Request().Context(), actorFrom(c), req.BookDocID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"docId": docID})
}

func (h *Handler) ApproveRequest(c echo.Context) error {
	var req approveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.svc.ApproveRequest(c.Request().Context(), actorFrom(c), c.Param("id"), req.PickupWindows, req.PickupNotes); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) SelectWindow(c echo.Context) error {
	var req selectWindowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.svc.SelectWindow(c.Request().Context(), actorFrom(c), c.Param("id"), *req.SelectedWindowIndex); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) CompleteRequest(c echo.Context) error {
	transactionID, err := h.svc.CompleteRequest(c.Request().Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"transactionId": transactionID})
}

func (h *Handler) CancelRequest(c echo.Context) error {
	if err := h.svc.CancelRequest(c.Request().Context(), actorFrom(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ListRequests(c echo.Context) error {
	reqs, err := h.svc.ListRequests(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	resp := make([]requestResponse, 0, len(reqs))
	for _, r := range reqs {
		resp = append(resp, requestResponse{DocID: r.DocID, CheckoutRequest: r})
	}
	return c.JSON(http.StatusOK, resp)
}
