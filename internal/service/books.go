package service

import (
	"context"
	"time"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
)

type BookInput struct {
	Title        string
	AuthorLast   string
	AuthorFirst  string
	Author2Last  *string
	Author2First *string
	Genre        string
	IsYA         bool
	Condition    model.Condition
	Status       model.BookStatus
	DonorID      *string
	DonorName    *string
	DonationDate *time.Time
	CoverURL     *string
	Notes        string
}

// CreateBook registers a copy and assigns its immutable display id.
func (s *Service) CreateBook(ctx context.Context, actor model.Actor, in BookInput) (model.Book, error) {
	if !actor.IsAdmin() {
		return model.Book{}, errs.ErrForbidden
	}

	displayID, err := s.repo.AllocateDisplayID(ctx, model.BookIDPrefix, "nextBookId")
	if err != nil {
		return model.Book{}, err
	}

	status := in.Status
	if status == "" {
		status = model.BookAvailable
	}
	now := s.now()
	book := model.Book{
		DisplayID:    displayID,
		Title:        in.Title,
		AuthorLast:   in.AuthorLast,
		AuthorFirst:  in.AuthorFirst,
		Author2Last:  in.Author2Last,
		Author2First: in.Author2First,
		Genre:        in.Genre,
		IsYA:         in.IsYA,
		Condition:    in.Condition,
		Status:       status,
		DonorID:      in.DonorID,
		DonorName:    in.DonorName,
		DonationDate: in.DonationDate,
		CoverURL:     in.CoverURL,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.InsertBook(ctx, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook applies catalog edits. The display id and checkout counter are
// not editable.
func (s *Service) UpdateBook(ctx context.Context, actor model.Actor, docID string, in BookInput) (model.Book, error) {
	if !actor.IsAdmin() {
		return model.Book{}, errs.ErrForbidden
	}
	book, err := s.repo.GetBook(ctx, docID)
	if err != nil {
		return model.Book{}, err
	}

	book.Title = in.Title
	book.AuthorLast = in.AuthorLast
	book.AuthorFirst = in.AuthorFirst
	book.Author2Last = in.Author2Last
	book.Author2First = in.Author2First
	book.Genre = in.Genre
	book.IsYA = in.IsYA
	book.Condition = in.Condition
	if in.Status != "" {
		book.Status = in.Status
	}
	book.DonorID = in.DonorID
	book.DonorName = in.DonorName
	book.CoverURL = in.CoverURL
	book.Notes = in.Notes
	book.UpdatedAt = s.now()

	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, actor model.Actor, docID string) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	if _, err := s.repo.GetBook(ctx, docID); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, docID)
}

func (s *Service) GetBook(ctx context.Context, docID string) (model.Book, error) {
	return s.repo.GetBook(ctx, docID)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}
