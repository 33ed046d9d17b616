package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/service"
)

type checkoutRequest struct {
	BookDocID           string `json:"bookDocId" validate:"required"`
	BorrowerDocID       string `json:"borrowerDocId" validate:"required"`
	ConditionAtCheckout string `json:"conditionAtCheckout" validate:"required,oneof=New 'Like New' 'Very Good' Good Fair Poor"`
}

type checkinRequest struct {
	ConditionAtCheckin string `json:"conditionAtCheckin" validate:"required,oneof=New 'Like New' 'Very Good' Good Fair Poor"`
	Notes              string `json:"notes"`
}

type transactionResponse struct {
	DocID string `json:"docId"`
	model.Transaction
}

func (h *Handler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	transactionID, err := h.svc.Checkout(c.Request().Context(), actorFrom(c), service.CheckoutInput{
		BookDocID:           req.BookDocID,
		BorrowerDocID:       req.BorrowerDocID,
		ConditionAtCheckout: model.Condition(req.ConditionAtCheckout),
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"transactionId": transactionID})
}

func (h *Handler) Checkin(c echo.Context) error {
	var req checkinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.svc.Checkin(c.Request().Context(), actorFrom(c), c.Param("id"), model.Condition(req.ConditionAtCheckin), req.Notes); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ListTransactions(c echo.Context) error {
	txns, err := h.svc.ListTransactions(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	resp := make([]transactionResponse, 0, len(txns))
	for _, t := range txns {
		resp = append(resp, transactionResponse{DocID: t.DocID, Transaction: t})
	}
	return c.JSON(http.StatusOK, resp)
}
