package service

import (
	"context"
	"time"

	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
	"github.com/rs/zerolog"
)

const sweepBatchSize = 500

// MaintenanceService removes evidence no audit record points to and purges
// expired idempotency keys.
type MaintenanceService struct {
	storage      repository.EvidenceStorage
	keys         EvidenceKeys
	deliveryRepo repository.DeliveryRepository
	idemRepo     repository.IdempotencyRepository
	minAge       time.Duration
	metrics      *observability.DomainMetrics
	log          zerolog.Logger
	now          func() time.Time
}

// NewMaintenanceService creates the sweeper. Objects younger than minAge are
// never touched so in-flight deliveries keep their upload, and only keys laid
// out by keys are considered.
func NewMaintenanceService(
	storage repository.EvidenceStorage,
	keys EvidenceKeys,
	deliveryRepo repository.DeliveryRepository,
	idemRepo repository.IdempotencyRepository,
	minAge time.Duration,
	metrics *observability.DomainMetrics,
	log zerolog.Logger,
) *MaintenanceService {
	if minAge < time.Hour {
		minAge = time.Hour
	}
	return &MaintenanceService{
		storage:      storage,
		keys:         keys,
		deliveryRepo: deliveryRepo,
		idemRepo:     idemRepo,
		minAge:       minAge,
		metrics:      metrics,
		log:          log.With().Str("component", "maintenance").Logger(),
		now:          time.Now,
	}
}

// SweepOrphans deletes unreferenced evidence older than the minimum age and
// returns how many objects were removed.
func (s *MaintenanceService) SweepOrphans(ctx context.Context) (int, error) {
	listed, err := s.storage.ListOlderThan(ctx, s.keys.ListPrefix(), s.now().Add(-s.minAge))
	if err != nil {
		return 0, err
	}
	objects := listed[:0]
	for _, obj := range listed {
		if s.keys.Owns(obj.Path) {
			objects = append(objects, obj)
		}
	}

	removed := 0
	for start := 0; start < len(objects); start += sweepBatchSize {
		end := min(start+sweepBatchSize, len(objects))
		paths := make([]string, 0, end-start)
		for _, obj := range objects[start:end] {
			paths = append(paths, obj.Path)
		}

		referenced, err := s.deliveryRepo.ReferencedEvidence(ctx, paths)
		if err != nil {
			return removed, err
		}
		for _, p := range paths {
			if referenced[p] {
				continue
			}
			if err := s.storage.Delete(ctx, p); err != nil {
				s.log.Warn().Err(err).Str("path", p).Msg("orphan evidence delete failed")
				continue
			}
			removed++
			s.metrics.OrphanSwept()
		}
	}
	return removed, nil
}

// RunOnce performs one maintenance pass, logging failures.
func (s *MaintenanceService) RunOnce(ctx context.Context) {
	removed, err := s.SweepOrphans(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("orphan evidence sweep failed")
	} else if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("orphan evidence swept")
	}

	if s.idemRepo != nil {
		purged, err := s.idemRepo.PurgeExpired(ctx, s.now())
		if err != nil {
			s.log.Error().Err(err).Msg("idempotency key purge failed")
		} else if purged > 0 {
			s.log.Info().Int64("purged", purged).Msg("expired idempotency keys purged")
		}
	}
}

// Run repeats RunOnce every interval until ctx is cancelled. A non-positive
// interval disables the loop.
func (s *MaintenanceService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.log.Info().Msg("maintenance loop disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}
