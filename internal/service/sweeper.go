package service

import (
	"context"
	"time"

	"portfolio-backend/internal/repository"

	"go.uber.org/zap"
)

// DenylistSweeper periodically deletes denylist entries whose session tokens
// have passed their natural expiry. Without it revoked-token rows accumulate
// forever, since nothing else ever removes them.
type DenylistSweeper struct {
	denylist repository.DenylistRepository
	logger   *zap.Logger
	tokenTTL time.Duration
	interval time.Duration
}

func NewDenylistSweeper(denylist repository.DenylistRepository, logger *zap.Logger, tokenTTL time.Duration) *DenylistSweeper {
	return &DenylistSweeper{
		denylist: denylist,
		logger:   logger,
		tokenTTL: tokenTTL,
		interval: time.Hour,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. An entry
// older than the session TTL belongs to a token that can no longer validate,
// so dropping it cannot un-revoke anything.
func (s *DenylistSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Denylist sweeper shutting down...")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.tokenTTL)
			n, err := s.denylist.DeleteOlderThan(cutoff)
			if err != nil {
				s.logger.Error("Denylist sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.logger.Info("Denylist sweep removed expired entries", zap.Int64("count", n))
			}
		}
	}
}
