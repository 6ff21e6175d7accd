package service

import (
	"context"
	"errors"
	"fmt"

	"courier-tracker/internal/core/logger"
	"courier-tracker/internal/core/metrics"
	"courier-tracker/internal/features/consignments/domain"
	"courier-tracker/internal/features/consignments/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrAllocationFailed is returned when no consignment number could be issued. Callers must
// abort the booking; retrying with a skipped number would break uniqueness.
var ErrAllocationFailed = errors.New("consignment allocation failed")

// AllocatorServiceImpl implements ports.AllocatorService with floor-then-increment.
type AllocatorServiceImpl struct {
	counter ports.CounterStore
	sources []ports.FloorSource
	base    int64
	key     string
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewAllocatorService creates a new AllocatorServiceImpl. base is the lowest number the
// counter may ever issue from; sources are every collection that stores consignment numbers.
func NewAllocatorService(counter ports.CounterStore, sources []ports.FloorSource, base int64, key string, m *metrics.Metrics) *AllocatorServiceImpl {
	return &AllocatorServiceImpl{
		counter: counter,
		sources: sources,
		base:    base,
		key:     key,
		metrics: m,
		log:     logger.Named("consignments"),
	}
}

// NextID computes the floor across all sources and atomically raises-then-increments the counter.
func (s *AllocatorServiceImpl) NextID(ctx context.Context) (int64, error) {
	floor, err := s.floor(ctx)
	if err != nil {
		s.metrics.IncrementAllocationFailures()
		s.log.Error("Failed to compute consignment floor", zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	next, err := s.counter.Allocate(ctx, floor)
	if err != nil {
		s.metrics.IncrementAllocationFailures()
		s.log.Error("Failed to allocate consignment number", zap.Int64("floor", floor), zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	s.metrics.IncrementAllocated()
	s.log.Info("Allocated consignment number", zap.Int64("consignment_number", next), zap.Int64("floor", floor))
	return next, nil
}

// Current returns the counter without changing it.
func (s *AllocatorServiceImpl) Current(ctx context.Context) (*domain.Sequence, error) {
	n, err := s.counter.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read counter: %w", err)
	}
	return &domain.Sequence{Key: s.key, CurrentNumber: n}, nil
}

// floor reads every source concurrently; any failure aborts, since an unknown maximum
// could let the counter reissue a stored number.
func (s *AllocatorServiceImpl) floor(ctx context.Context) (int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	maxima := make([]int64, len(s.sources))

	for i, src := range s.sources {
		g.Go(func() error {
			n, err := src.MaxConsignment(ctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			maxima[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return domain.Floor(s.base, maxima...), nil
}
