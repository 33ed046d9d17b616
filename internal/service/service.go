package service

import (
	"context"
	"time"

	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/internal/repository"
	"github.com/openshelf/circulation/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, errs.ErrConflict)
}

// CreditPolicy is the pluggable hook for the credits feature. The settings
// define costs and rewards but no flow spends or grants credits yet; the
// default policy does nothing until the product decision lands.
type CreditPolicy interface {
	OnCheckout(ctx context.Context, member model.Member, settings model.Settings) error
}

type nopCreditPolicy struct{}

func (nopCreditPolicy) OnCheckout(context.Context, model.Member, model.Settings) error { return nil }

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	pub     kafka.Publisher
	credits CreditPolicy
	now     func() time.Time
}

type Option func(*Service)

func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithCreditPolicy(p CreditPolicy) Option {
	return func(s *Service) { s.credits = p }
}

func NewService(repo repository.Repository, pub kafka.Publisher, log *zap.Logger, ops ...Option) *Service {
	s := &Service{
		log:     log,
		repo:    repo,
		pub:     pub,
		credits: nopCreditPolicy{},
		now:     time.Now,
	}
	for _, op := range ops {
		op(s)
	}
	return s
}
