package service

import (
	"context"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"go.uber.org/zap"
)

// PlaceHold reserves an Available book for the acting member for 24 hours.
func (s *Service) PlaceHold(ctx context.Context, actor model.Actor, bookDocID string) (string, error) {
	book, err := s.repo.GetBook(ctx, bookDocID)
	if err != nil {
		return "", err
	}
	if book.Status != model.BookAvailable {
		return "", errs.ErrNotAvailable
	}

	// An existing active hold blocks a new one, unless it turns out to have
	// lapsed: every hold is lazily expired before it can stand in the way.
	existing, err := s.repo.FindActiveHoldsByHolder(ctx, actor.DisplayID)
	if err != nil {
		return "", err
	}
	for i := range existing {
		expired, err := s.ExpireHoldIfNeeded(ctx, &existing[i])
		if err != nil {
			return "", err
		}
		if !expired {
			return "", errs.ErrAlreadyHeld
		}
	}

	book.Status = model.BookOnHold
	book.UpdatedAt = s.now()
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return "", err
	}

	now := s.now()
	hold := model.Hold{
		BookID:      book.DisplayID,
		BookTitle:   book.Title,
		BookDocID:   book.DocID,
		HolderID:    actor.DisplayID,
		HolderName:  actor.Name,
		HolderDocID: actor.DocID,
		HoldDate:    now,
		ExpiresAt:   now.Add(model.HoldDuration),
		Status:      model.HoldActive,
		CreatedAt:   now,
	}
	if err := s.repo.InsertHold(ctx, &hold); err != nil {
		return "", err
	}
	s.log.Info("hold placed",
		zap.String("book", book.DisplayID), zap.String("holder", actor.DisplayID))
	return hold.DocID, nil
}

// ExpireHoldIfNeeded lazily expires a hold that is active and past its
// expiration. Idempotent: anything already expired (or otherwise terminal)
// is left alone. Returns whether expiry fired. The hold is updated in place.
func (s *Service) ExpireHoldIfNeeded(ctx context.Context, hold *model.Hold) (bool, error) {
	if hold.Status != model.HoldActive {
		return false, nil
	}
	if s.now().Before(hold.ExpiresAt) {
		return false, nil
	}

	hold.Status = model.HoldExpired
	if err := s.repo.UpdateHold(ctx, *hold); err != nil {
		return false, err
	}
	hold.Version++

	book, err := s.repo.GetBook(ctx, hold.BookDocID)
	if err != nil {
		// The book may have been deleted; the hold is still expired.
		s.log.Warn("expire hold: book lookup", zap.String("bookDocId", hold.BookDocID), zap.Error(err))
		return true, nil
	}
	book.Status = model.BookAvailable
	book.UpdatedAt = s.now()
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return false, err
	}
	s.log.Info("hold expired", zap.String("hold", hold.DocID), zap.String("book", hold.BookID))
	return true, nil
}

// CancelHold releases a hold and makes the book available again. Members may
// cancel only their own holds; admins may cancel any.
func (s *Service) CancelHold(ctx context.Context, actor model.Actor, holdDocID string) error {
	hold, err := s.repo.GetHold(ctx, holdDocID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && hold.HolderDocID != actor.DocID {
		return errs.ErrForbidden
	}

	hold.Status = model.HoldCancelled
	if err := s.repo.UpdateHold(ctx, hold); err != nil {
		return err
	}

	book, err := s.repo.GetBook(ctx, hold.BookDocID)
	if err != nil {
		return err
	}
	book.Status = model.BookAvailable
	book.UpdatedAt = s.now()
	return s.repo.UpdateBook(ctx, book)
}

// FulfillHold closes out an active hold so the holder can check the book out.
// The book goes back to Available; the caller follows up with Checkout, which
// applies the normal Available -> Checked Out transition.
func (s *Service) FulfillHold(ctx context.Context, actor model.Actor, holdDocID string) (model.Hold, error) {
	if !actor.IsAdmin() {
		return model.Hold{}, errs.ErrForbidden
	}
	hold, err := s.repo.GetHold(ctx, holdDocID)
	if err != nil {
		return model.Hold{}, err
	}
	if hold.Status != model.HoldActive {
		return model.Hold{}, errs.ErrNotActive
	}
	expired, err := s.ExpireHoldIfNeeded(ctx, &hold)
	if err != nil {
		return model.Hold{}, err
	}
	if expired {
		return model.Hold{}, errs.ErrExpired
	}

	hold.Status = model.HoldFulfilled
	if err := s.repo.UpdateHold(ctx, hold); err != nil {
		return model.Hold{}, err
	}

	book, err := s.repo.GetBook(ctx, hold.BookDocID)
	if err != nil {
		return model.Hold{}, err
	}
	book.Status = model.BookAvailable
	book.UpdatedAt = s.now()
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return model.Hold{}, err
	}
	return hold, nil
}

// ListHolds returns all holds, lazily expiring stale active ones on the way
// out so the admin view never shows a hold that should have lapsed.
func (s *Service) ListHolds(ctx context.Context, actor model.Actor) ([]model.Hold, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	holds, err := s.repo.ListHolds(ctx)
	if err != nil {
		return nil, err
	}
	for i := range holds {
		if _, err := s.ExpireHoldIfNeeded(ctx, &holds[i]); err != nil {
			return nil, err
		}
	}
	return holds, nil
}
