package service

import (
	"context"
	"fmt"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"go.uber.org/zap"
)

// RequestCheckout starts the pickup negotiation for a book. The book must be
// Available, or On Hold for the requester (in which case the hold is
// fulfilled by the request).
func (s *Service) RequestCheckout(ctx context.Context, actor model.Actor, bookDocID string) (string, error) {
	book, err := s.repo.GetBook(ctx, bookDocID)
	if err != nil {
		return "", err
	}
	if book.Status != model.BookAvailable && book.Status != model.BookOnHold {
		return "", errs.ErrNotAvailable
	}

	var bookHolds []model.Hold
	if book.Status == model.BookOnHold {
		bookHolds, err = s.repo.FindActiveHoldsByBook(ctx, book.DocID)
		if err != nil {
			return "", err
		}
		if len(bookHolds) > 0 && bookHolds[0].HolderID != actor.DisplayID {
			return "", errs.ErrHoldConflict
		}
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	member, err := s.repo.GetMember(ctx, actor.DocID)
	if err != nil {
		return "", err
	}
	if member.BooksCheckedOut >= settings.MaxBooksPerMember {
		return "", errs.ErrLimitReached
	}

	open, err := s.repo.FindOpenRequests(ctx, book.DocID, actor.DocID)
	if err != nil {
		return "", err
	}
	if len(open) > 0 {
		return "", errs.ErrDuplicateRequest
	}

	book.Status = model.BookPendingPickup
	book.UpdatedAt = s.now()
	if err := s.repo.UpdateBook(ctx, book); err != nil {
		return "", err
	}

	// The request supersedes the requester's own hold.
	for _, hold := range bookHolds {
		hold.Status = model.HoldFulfilled
		if err := s.repo.UpdateHold(ctx, hold); err != nil {
			return "", err
		}
	}

	now := s.now()
	req := model.CheckoutRequest{
		BookID:         book.DisplayID,
		BookTitle:      book.Title,
		BookDocID:      book.DocID,
		RequesterID:    actor.DisplayID,
		RequesterName:  actor.Name,
		RequesterDocID: actor.DocID,
		Status:         model.RequestPending,
		RequestedAt:    now,
		PickupWindows:  []model.PickupWindow{},
		PickupNotes:    "",
		CreatedAt:      now,
	}
	if err := s.repo.InsertRequest(ctx, &req); err != nil {
		return "", err
	}

	s.notifyAdmins(ctx, model.NotifyCheckoutRequest,
		"New checkout request",
		fmt.Sprintf("%s requested %q", actor.Name, book.Title),
		"/admin/checkout-requests")

	s.log.Info("checkout requested",
		zap.String("book", book.DisplayID), zap.String("requester", actor.DisplayID))
	return req.DocID, nil
}

// ApproveRequest moves a pending request to approved with at least three
// candidate pickup windows for the member to choose from.
func (s *Service) ApproveRequest(ctx context.Context, actor model.Actor, requestDocID string, windows []model.PickupWindow, notes string) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	if len(windows) < 3 {
		return errs.ErrTooFewWindows
	}

	req, err := s.repo.GetRequest(ctx, requestDocID)
	if err != nil {
		return err
	}
	if req.Status != model.RequestPending {
		return errs.ErrNotPending
	}

	now := s.now()
	req.Status = model.RequestApproved
	req.ReviewedAt = &now
	reviewer := actor.DisplayID
	req.ReviewedBy = &reviewer
	req.PickupWindows = windows
	req.SelectedWindowIndex = nil
	req.PickupNotes = notes
	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return err
	}

	s.notifyMemberByDocID(ctx, req.RequesterDocID, model.NotifyRequestApproved,
		"Checkout approved!",
		fmt.Sprintf("Your request for %q has been approved. Please select a pickup time.", req.BookTitle),
		"/my/dashboard")
	return nil
}

// SelectWindow is the member's one-shot choice among the offered windows.
func (s *Service) SelectWindow(ctx context.Context, actor model.Actor, requestDocID string, index int) error {
	req, err := s.repo.GetRequest(ctx, requestDocID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && req.RequesterDocID != actor.DocID {
		return errs.ErrForbidden
	}
	if req.Status != model.RequestApproved {
		return errs.ErrNotApproved
	}
	if req.SelectedWindowIndex != nil {
		return errs.ErrAlreadySelected
	}
	if index < 0 || index >= len(req.PickupWindows) {
		return errs.ErrInvalidIndex
	}
	chosen := req.PickupWindows[index]

	req.Status = model.RequestScheduled
	req.SelectedWindowIndex = &index
	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return err
	}

	var adminID string
	if req.ReviewedBy != nil {
		adminID = *req.ReviewedBy
	}
	event := model.CalendarEvent{
		CheckoutRequestID: req.DocID,
		BookID:            req.BookID,
		BookTitle:         req.BookTitle,
		MemberID:          req.RequesterID,
		MemberName:        req.RequesterName,
		MemberDocID:       req.RequesterDocID,
		AdminID:           adminID,
		Date:              chosen.Date,
		StartTime:         chosen.StartTime,
		EndTime:           chosen.EndTime,
		Type:              "pickup",
		CreatedAt:         s.now(),
	}
	if err := s.repo.InsertCalendarEvent(ctx, &event); err != nil {
		return err
	}

	s.notifyAdmins(ctx, model.NotifyWindowSelected,
		"Pickup time selected",
		fmt.Sprintf("%s selected pickup for %q: %s (%s–%s)",
			req.RequesterName, req.BookTitle, chosen.Date, chosen.StartTime, chosen.EndTime),
		"/admin/checkout-requests")
	return nil
}

// CompleteRequest hands the request off to the transaction manager. Approved
// is allowed alongside scheduled so an admin can walk a member through
// without waiting for a window selection.
func (s *Service) CompleteRequest(ctx context.Context, actor model.Actor, requestDocID string) (string, error) {
	if !actor.IsAdmin() {
		return "", errs.ErrForbidden
	}
	req, err := s.repo.GetRequest(ctx, requestDocID)
	if err != nil {
		return "", err
	}
	if req.Status != model.RequestApproved && req.Status != model.RequestScheduled {
		return "", errs.ErrInvalidState
	}

	book, err := s.repo.GetBook(ctx, req.BookDocID)
	if err != nil {
		return "", err
	}
	// Release the Pending Pickup claim so the checkout sees the normal
	// Available -> Checked Out transition.
	if book.Status == model.BookPendingPickup {
		book.Status = model.BookAvailable
		book.UpdatedAt = s.now()
		if err := s.repo.UpdateBook(ctx, book); err != nil {
			return "", err
		}
	}

	displayID, err := s.Checkout(ctx, actor, CheckoutInput{
		BookDocID:           req.BookDocID,
		BorrowerDocID:       req.RequesterDocID,
		ConditionAtCheckout: book.Condition,
	})
	if err != nil {
		return "", err
	}

	now := s.now()
	req.Status = model.RequestCompleted
	req.CompletedAt = &now
	req.TransactionID = &displayID
	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return "", err
	}
	return displayID, nil
}

// CancelRequest aborts a non-terminal request and releases the book. Members
// may cancel only their own requests.
func (s *Service) CancelRequest(ctx context.Context, actor model.Actor, requestDocID string) error {
	req, err := s.repo.GetRequest(ctx, requestDocID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && req.RequesterDocID != actor.DocID {
		return errs.ErrForbidden
	}
	if !req.Open() {
		return errs.ErrInvalidState
	}

	book, err := s.repo.GetBook(ctx, req.BookDocID)
	if err == nil {
		book.Status = model.BookAvailable
		book.UpdatedAt = s.now()
		if err := s.repo.UpdateBook(ctx, book); err != nil {
			return err
		}
	} else if !isNotFound(err) {
		return err
	}

	if req.Status == model.RequestScheduled {
		if err := s.repo.DeleteCalendarEventsByRequest(ctx, req.DocID); err != nil {
			return err
		}
	}

	now := s.now()
	req.Status = model.RequestCancelled
	req.ReviewedAt = &now
	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return err
	}

	if actor.IsAdmin() && actor.DocID != req.RequesterDocID {
		s.notifyMemberByDocID(ctx, req.RequesterDocID, model.NotifyRequestCancelled,
			"Request cancelled",
			fmt.Sprintf("Your request for %q was cancelled by an admin.", req.BookTitle),
			"/my/dashboard")
	} else {
		s.notifyAdmins(ctx, model.NotifyRequestCancelled,
			"Request cancelled by member",
			fmt.Sprintf("%s cancelled their request for %q", actor.Name, req.BookTitle),
			"/admin/checkout-requests")
	}
	return nil
}

// ListRequests returns every checkout request for the admin review queue.
func (s *Service) ListRequests(ctx context.Context, actor model.Actor) ([]model.CheckoutRequest, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListRequests(ctx)
}
