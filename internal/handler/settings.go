package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/service"
)

type settingsRequest struct {
	CheckoutDurationDays int `json:"checkoutDurationDays" validate:"required,min=1"`
	MaxBooksPerMember    int `json:"maxBooksPerMember" validate:"required,min=1"`
	CreditCostCheckout   int `json:"creditCostCheckout" validate:"min=0"`
	CreditRewardDonation int `json:"creditRewardDonation" validate:"min=0"`
}

func (h *Handler) GetSettings(c echo.Context) error {
	settings, err := h.svc.GetSettings(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	settings, err := h.svc.UpdateSettings(c.Request().Context(), actorFrom(c), service.SettingsInput{
		CheckoutDurationDays: req.CheckoutDurationDays,
		MaxBooksPerMember:    req.MaxBooksPerMember,
		CreditCostCheckout:   req.CreditCostCheckout,
		CreditRewardDonation: req.CreditRewardDonation,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, settings)
}
