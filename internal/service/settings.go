package service

import (
	"context"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
)

type SettingsInput struct {
	CheckoutDurationDays int
	MaxBooksPerMember    int
	CreditCostCheckout   int
	CreditRewardDonation int
}

func (s *Service) GetSettings(ctx context.Context, actor model.Actor) (model.Settings, error) {
	if !actor.IsAdmin() {
		return model.Settings{}, errs.ErrForbidden
	}
	return s.repo.GetSettings(ctx)
}

// UpdateSettings changes the circulation policy knobs. The id counters are
// not writable through here; only AllocateNext moves them.
func (s *Service) UpdateSettings(ctx context.Context, actor model.Actor, in SettingsInput) (model.Settings, error) {
	if !actor.IsAdmin() {
		return model.Settings{}, errs.ErrForbidden
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	settings.CheckoutDurationDays = in.CheckoutDurationDays
	settings.MaxBooksPerMember = in.MaxBooksPerMember
	settings.CreditCostCheckout = in.CreditCostCheckout
	settings.CreditRewardDonation = in.CreditRewardDonation

	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
