package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/service"
)

type memberRequest struct {
	LastName       string `json:"lastName" validate:"required"`
	FirstName      string `json:"firstName" validate:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Role           string `json:"role" validate:"omitempty,oneof=member admin"`
	TotalDonations int    `json:"totalDonations" validate:"min=0"`
	IsActive       bool   `json:"isActive"`
	Notes          string `json:"notes"`
}

func (r memberRequest) input() service.MemberInput {
	return service.MemberInput{
		LastName:       r.LastName,
		FirstName:      r.FirstName,
		Phone:          r.Phone,
		Email:          r.Email,
		Role:           model.Role(r.Role),
		TotalDonations: r.TotalDonations,
		IsActive:       r.IsActive,
		Notes:          r.Notes,
	}
}

type memberResponse struct {
	DocID string `json:"docId"`
	model.Member
}

func (h *Handler) CreateMember(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	member, err := h.svc.CreateMember(c.Request().Context(), actorFrom(c), req.input())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, memberResponse{DocID: member.DocID, Member: member})
}

func (h *Handler) UpdateMember(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	member, err := h.svc.UpdateMember(c.Request().Context(), actorFrom(c), c.Param("id"), req.input())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, memberResponse{DocID: member.DocID, Member: member})
}

func (h *Handler) GetMember(c echo.Context) error {
	member, err := h.svc.GetMember(c.Request().Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, memberResponse{DocID: member.DocID, Member: member})
}

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.svc.ListMembers(c.Request().Context(), actorFrom(c))
	if err != nil {
		return httpError(err)
	}
	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, memberResponse{DocID: m.DocID, Member: m})
	}
	return c.JSON(http.StatusOK, resp)
}
