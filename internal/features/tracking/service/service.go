package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courier-tracker/internal/core/logger"
	"courier-tracker/internal/core/metrics"
	"courier-tracker/internal/features/tracking/domain"
	"courier-tracker/internal/features/tracking/ports"
	"courier-tracker/internal/features/tracking/reconcile"

	"go.uber.org/zap"
)

// ErrShipmentNotFound is returned when no source holds the requested identifier.
var ErrShipmentNotFound = errors.New("shipment not found")

// Outcome labels for tracking metrics.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// TrackingServiceImpl implements ports.TrackingService. It locates the authoritative
// source document and projects it through the reconciliation engine on every request.
type TrackingServiceImpl struct {
	repo    ports.DocumentRepository
	engine  *reconcile.Engine
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewTrackingService creates a new TrackingServiceImpl. A nil engine uses the default
// alias table and dedupe window; m may be nil.
func NewTrackingService(repo ports.DocumentRepository, engine *reconcile.Engine, m *metrics.Metrics) *TrackingServiceImpl {
	if engine == nil {
		engine = reconcile.NewEngine(nil, 0)
	}
	return &TrackingServiceImpl{
		repo:    repo,
		engine:  engine,
		metrics: m,
		log:     logger.Named("tracking"),
	}
}

// GetTracking returns the full reconciled view of a shipment.
func (s *TrackingServiceImpl) GetTracking(ctx context.Context, identifier string) (*domain.TrackingResponse, error) {
	doc, err := s.locate(ctx, identifier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	projection := s.engine.Project(doc)
	s.metrics.ObserveProjection(time.Since(start), projection.Collapsed)

	s.log.Debug("Projected shipment",
		zap.String("identifier", identifier),
		zap.String("source", string(doc.Kind())),
		zap.String("current_step", projection.Response.Metadata.CurrentStepKey),
		zap.Int("collapsed", projection.Collapsed),
	)
	return &projection.Response, nil
}

// GetMovement returns only the shipment's movement history.
func (s *TrackingServiceImpl) GetMovement(ctx context.Context, identifier string) (*domain.MovementSummary, error) {
	doc, err := s.locate(ctx, identifier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary, collapsed := s.engine.Movement(doc)
	s.metrics.ObserveProjection(time.Since(start), collapsed)
	return &summary, nil
}

// locate walks the lookup order and returns the first source holding identifier.
func (s *TrackingServiceImpl) locate(ctx context.Context, identifier string) (domain.SourceDocument, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrShipmentNotFound
	}

	for _, kind := range domain.LookupOrder {
		doc, err := s.repo.Find(ctx, kind, identifier)
		if errors.Is(err, ports.ErrDocumentNotFound) {
			continue
		}
		if err != nil {
			s.metrics.ObserveTracking(string(kind), outcomeError)
			s.log.Error("Document lookup failed",
				zap.String("identifier", identifier),
				zap.String("source", string(kind)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("service: failed to load %s document: %w", kind, err)
		}
		s.metrics.ObserveTracking(string(kind), outcomeFound)
		return doc, nil
	}

	s.metrics.ObserveTracking("none", outcomeNotFound)
	s.log.Info("Shipment not found", zap.String("identifier", identifier))
	return nil, ErrShipmentNotFound
}
