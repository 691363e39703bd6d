package rollover

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/storage"
)

const (
	periodLayout  = "2006-01"
	sweepInterval = time.Hour
	maxWorkers    = 10
	maxRetries    = 3
)

type AccountRepo interface {
	AccountIDs(ctx context.Context) ([]string, int64, error)
	Get(ctx context.Context, accountID string) (*domain.AccountRecord, int64, error)
	Save(ctx context.Context, rec *domain.AccountRecord, version int64) error
}

var processing sync.Map

// Service rolls monthly earnings counters forward when an account's
// earnings period lags the current month. The account manager also rolls
// lazily on every purchase; the sweep keeps idle accounts from carrying
// a stale month into classification.
type Service struct {
	repo     AccountRepo
	interval time.Duration
}

func New(repo AccountRepo) *Service {
	return &Service{
		repo:     repo,
		interval: sweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("rollover sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping rollover sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	ids, _, err := s.repo.AccountIDs(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts for rollover", zap.Error(err))
		return
	}

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, id := range ids {
		id := id

		if _, loaded := processing.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			defer processing.Delete(id)
			if err := s.roll(ctx, id); err != nil {
				zap.L().Error("rollover failed", zap.String("account_id", id), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("rollover sweep finished with error", zap.Error(err))
	}
}

func (s *Service) roll(ctx context.Context, accountID string) error {
	period := time.Now().Format(periodLayout)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond

	return backoff.Retry(func() error {
		rec, version, err := s.repo.Get(ctx, accountID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if rec == nil || rec.Account.EarningsPeriod == period {
			return nil
		}
		rec.Account.EarningsPeriod = period
		rec.Account.MonthlyEarnings = decimal.Zero
		if err := s.repo.Save(ctx, rec, version); err != nil {
			if errors.Is(err, storage.ErrVersionConflict) {
				return err
			}
			return backoff.Permanent(err)
		}
		zap.L().Debug("earnings period rolled", zap.String("account_id", accountID), zap.String("period", period))
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
}
