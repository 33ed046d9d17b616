package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/service"
)

type bookRequest struct {
	Title        string     `json:"title" validate:"required"`
	AuthorLast   string     `json:"authorLast" validate:"required"`
	AuthorFirst  string     `json:"authorFirst"`
	Author2Last  *string    `json:"author2Last"`
	Author2First *string    `json:"author2First"`
	Genre        string     `json:"genre"`
	IsYA         bool       `json:"isYA"`
	Condition    string     `json:"condition" validate:"required,oneof=New 'Like New' 'Very Good' Good Fair Poor"`
	Status       string     `json:"status" validate:"omitempty,oneof=Available 'Checked Out' 'On Hold' 'Pending Pickup' Lost Retired"`
	DonorID      *string    `json:"donorId"`
	DonorName    *string    `json:"donorName"`
	DonationDate *time.Time `json:"donationDate"`
	CoverURL     *string    `json:"coverUrl"`
	Notes        string     `json:"notes"`
}

func (r bookRequest) input() service.BookInput {
	return service.BookInput{
		Title:        r.Title,
		AuthorLast:   r.AuthorLast,
		AuthorFirst:  r.AuthorFirst,
		Author2Last:  r.Author2Last,
		Author2First: r.Author2First,
		Genre:        r.Genre,
		IsYA:         r.IsYA,
		Condition:    model.Condition(r.Condition),
		Status:       model.BookStatus(r.Status),
		DonorID:      r.DonorID,
		DonorName:    r.DonorName,
		DonationDate: r.DonationDate,
		CoverURL:     r.CoverURL,
		Notes:        r.Notes,
	}
}

type bookResponse struct {
	DocID string `json:"docId"`
	model.Book
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.svc.CreateBook(c.Request().Context(), actorFrom(c), req.input())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, bookResponse{DocID: book.DocID, Book: book})
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), actorFrom(c), c.Param("id"), req.input())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookResponse{DocID: book.DocID, Book: book})
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.svc.DeleteBook(c.Request().Context(), actorFrom(c), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.svc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookResponse{DocID: book.DocID, Book: book})
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.svc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, bookResponse{DocID: b.DocID, Book: b})
	}
	return c.JSON(http.StatusOK, resp)
}
