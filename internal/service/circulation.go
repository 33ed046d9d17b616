package service

import (
	"context"
	"math"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"go.uber.org/zap"
)

type CheckoutInput struct {
	BookDocID           string
	BorrowerDocID       string
	ConditionAtCheckout model.Condition
}

// Checkout creates the authoritative loan record. It is the only way a book
// becomes Checked Out, both for walk-ins and for completed requests.
func (s *Service) Checkout(ctx context.Context, actor model.Actor, in CheckoutInput) (string, error) {
	if !actor.IsAdmin() {
		return "", errs.ErrForbidden
	}

	book, err := s.repo.GetBook(ctx, in.BookDocID)
	if err != nil {
		return "", err
	}
	if book.Status != model.BookAvailable {
		return "", errs.ErrNotAvailable
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	borrower, err := s.repo.GetMember(ctx, in.BorrowerDocID)
	if err != nil {
		return "", err
	}
	if borrower.BooksCheckedOut >= settings.MaxBooksPerMember {
		return "", errs.ErrLimitReached
	}
	if err := s.credits.OnCheckout(ctx, borrower, settings); err != nil {
		return "", err
	}

	displayID, err := s.repo.AllocateDisplayID(ctx, model.TransactionIDPrefix, "nextTransactionId")
	if err != nil {
		return "", err
	}

	checkoutDate := s.now()
	txn := model.Transaction{
		DisplayID:           displayID,
		BookID:              book.DisplayID,
		BookTitle:           book.Title,
		BookDocID:           book.DocID,
		BorrowerID:          borrower.DisplayID,
		BorrowerName:        borrower.FullName(),
		BorrowerDocID:       borrower.DocID,
		CheckoutDate:        checkoutDate,
		DueDate:             checkoutDate.AddDate(0, 0, settings.CheckoutDurationDays),
		IsCheckedOut:        true,
		ConditionAtCheckout: in.ConditionAtCheckout,
		Notes:               "",
		CreatedAt:           checkoutDate,
	}
	if err := s.repo.InsertTransaction(ctx, &txn); err != nil {
		return "", err
	}

	book.Status = model.BookCheckedOut
	book.TimesCheckedOut++
	book.UpdatedAt = s.now()
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return "", err
	}

	borrower.BooksCheckedOut++
	borrower.UpdatedAt = s.now()
	if err := s.repo.UpdateMember(ctx, borrower); err != nil {
		return "", err
	}

	s.log.Info("checked out",
		zap.String("transaction", displayID),
		zap.String("book", book.DisplayID),
		zap.String("borrower", borrower.DisplayID))
	return displayID, nil
}

// Checkin closes a loan: the transaction gets its checkin half, the book
// returns to Available with its fresh condition, and the borrower's count
// drops (never below zero).
func (s *Service) Checkin(ctx context.Context, actor model.Actor, transactionDocID string, conditionAtCheckin model.Condition, notes string) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}

	txn, err := s.repo.GetTransaction(ctx, transactionDocID)
	if err != nil {
		return err
	}
	if !txn.IsCheckedOut {
		return errs.ErrInvalidState
	}

	checkinDate := s.now()
	durationDays := int(math.Round(checkinDate.Sub(txn.CheckoutDate).Hours() / 24))

	txn.CheckinDate = &checkinDate
	txn.IsCheckedOut = false
	txn.DurationDays = &durationDays
	txn.ConditionAtCheckin = &conditionAtCheckin
	txn.Notes = notes
	if err := s.repo.UpdateTransaction(ctx, txn); err != nil {
		return err
	}

	book, err := s.repo.GetBook(ctx, txn.BookDocID)
	if err != nil {
		return err
	}
	book.Status = model.BookAvailable
	book.Condition = conditionAtCheckin
	book.UpdatedAt = s.now()
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return err
	}

	borrower, err := s.repo.GetMember(ctx, txn.BorrowerDocID)
	if err != nil {
		return err
	}
	if borrower.BooksCheckedOut > 0 {
		borrower.BooksCheckedOut--
	}
	borrower.UpdatedAt = s.now()
	if err := s.repo.UpdateMember(ctx, borrower); err != nil {
		return err
	}

	s.log.Info("checked in",
		zap.String("transaction", txn.DisplayID),
		zap.Int("durationDays", durationDays))
	return nil
}

// ListTransactions returns the full loan ledger for admins.
func (s *Service) ListTransactions(ctx context.Context, actor model.Actor) ([]model.Transaction, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListTransactions(ctx)
}
