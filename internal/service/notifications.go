package service

import (
	"context"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"golang.org/x/sync/errgroup"
)

// ListNotifications returns the actor's own notifications, newest first by
// store order.
func (s *Service) ListNotifications(ctx context.Context, actor model.Actor) ([]model.Notification, error) {
	return s.repo.FindNotificationsByRecipient(ctx, actor.DocID)
}

func (s *Service) MarkNotificationRead(ctx context.Context, actor model.Actor, docID string) error {
	n, err := s.repo.GetNotification(ctx, docID)
	if err != nil {
		return err
	}
	if n.RecipientDocID != actor.DocID {
		return errs.ErrForbidden
	}
	if n.Read {
		return nil
	}
	n.Read = true
	return s.repo.UpdateNotification(ctx, n)
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, actor model.Actor) error {
	list, err := s.repo.FindNotificationsByRecipient(ctx, actor.DocID)
	if err != nil {
		return err
	}
	for _, n := range list {
		if n.Read {
			continue
		}
		n.Read = true
		if err := s.repo.UpdateNotification(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// Dashboard is the member's home view: their holds, open requests, current
// loans, and unread notification count. Stale holds are lazily expired so the
// member never sees a hold that has already lapsed.
type Dashboard struct {
	Holds       []model.Hold            `json:"holds"`
	Requests    []model.CheckoutRequest `json:"requests"`
	Loans       []model.Transaction     `json:"loans"`
	UnreadCount int                     `json:"unreadCount"`
}

func (s *Service) GetDashboard(ctx context.Context, actor model.Actor) (Dashboard, error) {
	var dash Dashboard
	gg, ctx := errgroup.WithContext(ctx)

	gg.Go(func() error {
		holds, err := s.repo.FindActiveHoldsByHolder(ctx, actor.DisplayID)
		if err != nil {
			return err
		}
		active := make([]model.Hold, 0, len(holds))
		for i := range holds {
			expired, err := s.ExpireHoldIfNeeded(ctx, &holds[i])
			if err != nil {
				return err
			}
			if !expired {
				active = append(active, holds[i])
			}
		}
		dash.Holds = active
		return nil
	})
	gg.Go(func() error {
		requests, err := s.repo.FindRequestsByRequester(ctx, actor.DocID)
		if err != nil {
			return err
		}
		open := make([]model.CheckoutRequest, 0, len(requests))
		for _, req := range requests {
			if req.Open() {
				open = append(open, req)
			}
		}
		dash.Requests = open
		return nil
	})
	gg.Go(func() error {
		loans, err := s.repo.FindOpenTransactionsByBorrower(ctx, actor.DocID)
		if err != nil {
			return err
		}
		dash.Loans = loans
		return nil
	})
	gg.Go(func() error {
		notifications, err := s.repo.FindNotificationsByRecipient(ctx, actor.DocID)
		if err != nil {
			return err
		}
		for _, n := range notifications {
			if !n.Read {
				dash.UnreadCount++
			}
		}
		return nil
	})

	if err := gg.Wait(); err != nil {
		return Dashboard{}, err
	}
	return dash, nil
}
