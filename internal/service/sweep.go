package service

import (
	"context"

	"go.uber.org/zap"
)

// SweepExpiredHolds expires every lapsed active hold. The lazy per-read
// expiry already keeps reads honest; the sweep is the backstop that frees
// books nobody is looking at.
func (s *Service) SweepExpiredHolds(ctx context.Context) (int, error) {
	holds, err := s.repo.ListActiveHolds(ctx)
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range holds {
		ok, err := s.ExpireHoldIfNeeded(ctx, &holds[i])
		if err != nil {
			s.log.Warn("sweep: expire hold", zap.String("hold", holds[i].DocID), zap.Error(err))
			continue
		}
		if ok {
			expired++
		}
	}
	if expired > 0 {
		s.log.Info("hold sweep", zap.Int("expired", expired))
	}
	return expired, nil
}
