package statusservice

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
	statusrepo "github.com/sellora/sellerwallet/internal/repo/status-repo"
	"github.com/sellora/sellerwallet/internal/statussync"
	"github.com/sellora/sellerwallet/internal/storage"
)

type Repo interface {
	Get(ctx context.Context, sellerID string) (*statusrepo.Record, int64, error)
	Save(ctx context.Context, rec *statusrepo.Record, version int64) error
}

var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// transitions is the moderation state machine. A seller with no record
// is pending_review.
var transitions = map[domain.SellerStatus][]domain.SellerStatus{
	domain.SellerPendingReview: {domain.SellerActive, domain.SellerRejected},
	domain.SellerRejected:      {domain.SellerResubmitted},
	domain.SellerBlocked:       {domain.SellerResubmitted},
	domain.SellerResubmitted:   {domain.SellerPendingReview},
	domain.SellerActive:        {domain.SellerBlocked},
}

// Service owns the durable moderation status and broadcasts changes on
// the status channel. The durable record is written first; the broadcast
// is best-effort and only spares open sessions a re-read.
type Service struct {
	repo       Repo
	channel    statussync.Channel
	maxRetries uint64
}

func New(repo Repo, channel statussync.Channel, maxRetries uint64) *Service {
	return &Service{
		repo:       repo,
		channel:    channel,
		maxRetries: maxRetries,
	}
}

func allowed(from, to domain.SellerStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SetStatus validates the transition, persists it under compare-and-set,
// then publishes the event to every open session.
func (s *Service) SetStatus(ctx context.Context, sellerID string, status domain.SellerStatus, comment string) (*statusrepo.Record, error) {
	var saved *statusrepo.Record

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxInterval = 250 * time.Millisecond

	err := backoff.Retry(func() error {
		rec, version, err := s.repo.Get(ctx, sellerID)
		if err != nil {
			return backoff.Permanent(err)
		}
		current := domain.SellerPendingReview
		if rec != nil {
			current = rec.Status
		}
		if !allowed(current, status) {
			return backoff.Permanent(ErrInvalidTransition)
		}
		next := &statusrepo.Record{
			SellerID:  sellerID,
			Status:    status,
			Comment:   comment,
			UpdatedAt: time.Now(),
		}
		if err := s.repo.Save(ctx, next, version); err != nil {
			if errors.Is(err, storage.ErrVersionConflict) {
				return err
			}
			return backoff.Permanent(err)
		}
		saved = next
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, s.maxRetries), ctx))
	if err != nil {
		if errors.Is(err, storage.ErrVersionConflict) {
			return nil, ErrConcurrentModification
		}
		return nil, err
	}

	event := domain.StatusEvent{
		SellerID:   sellerID,
		Status:     saved.Status,
		Comment:    saved.Comment,
		OccurredAt: saved.UpdatedAt,
	}
	if err := s.channel.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish status event", zap.String("seller_id", sellerID), zap.Error(err))
	}

	zap.L().Info("seller status changed",
		zap.String("seller_id", sellerID),
		zap.String("status", string(status)))
	return saved, nil
}

// GetStatus reads the durable status; absent means pending_review.
func (s *Service) GetStatus(ctx context.Context, sellerID string) (domain.SellerStatus, error) {
	rec, _, err := s.repo.Get(ctx, sellerID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return domain.SellerPendingReview, nil
	}
	return rec.Status, nil
}

// Watch subscribes handler to live events after first delivering the
// current durable status for sellerID. A session that subscribes late
// would otherwise miss transitions that fired before it registered.
func (s *Service) Watch(ctx context.Context, sellerID string, handler statussync.Handler) (string, error) {
	rec, _, err := s.repo.Get(ctx, sellerID)
	if err != nil {
		return "", err
	}
	if rec != nil {
		handler(domain.StatusEvent{
			SellerID:   rec.SellerID,
			Status:     rec.Status,
			Comment:    rec.Comment,
			OccurredAt: rec.UpdatedAt,
		})
	}
	return s.channel.Subscribe(handler), nil
}

func (s *Service) Unwatch(token string) {
	s.channel.Unsubscribe(token)
}
