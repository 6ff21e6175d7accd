package reconcile

import (
	"time"

	"courier-tracker/internal/features/tracking/classifier"
	"courier-tracker/internal/features/tracking/domain"
)

// Engine projects source documents into tracking views. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	table *classifier.Table
	dedup Deduplicator
}

// NewEngine creates an Engine. A non-positive window uses DefaultDedupeWindow.
func NewEngine(table *classifier.Table, window time.Duration) *Engine {
	if table == nil {
		table = classifier.Default()
	}
	if window <= 0 {
		window = DefaultDedupeWindow
	}
	return &Engine{
		table: table,
		dedup: Deduplicator{Window: window, Fold: table.Fold},
	}
}

// Projection is the result of projecting one document.
type Projection struct {
	Response domain.TrackingResponse
	// Collapsed counts movement events removed as duplicates.
	Collapsed int
}

// Project builds the full tracking response for doc.
func (e *Engine) Project(doc domain.SourceDocument) Projection {
	set := Extract(doc, e.table)
	flow := e.table.Flow(set.Kind)
	current := CurrentStep(&set, flow, e.table)
	steps := BuildTimeline(flow, current, DeriveStepData(&set, flow, current))
	movement, collapsed := ComposeMovement(&set, e.table, e.dedup)

	proof := []string{}
	if current == domain.StepDelivered {
		proof = nonNil(set.Delivery.ProofImages)
	}

	return Projection{
		Response: domain.TrackingResponse{
			Metadata:        metadata(&set, current, movement),
			Steps:           steps,
			MovementHistory: movement,
			Attachments: domain.Attachments{
				PackageImages:       nonNil(set.Details.PackageImages),
				DeliveryProofImages: proof,
			},
		},
		Collapsed: collapsed,
	}
}

// Movement builds the narrow movement-only view for doc.
func (e *Engine) Movement(doc domain.SourceDocument) (domain.MovementSummary, int) {
	set := Extract(doc, e.table)
	movement, collapsed := ComposeMovement(&set, e.table, e.dedup)
	return domain.MovementSummary{
		ConsignmentNumber: set.ConsignmentNumber,
		MovementHistory:   movement,
	}, collapsed
}

func metadata(set *domain.RawEventSet, current domain.Step, movement []domain.MovementEvent) domain.Metadata {
	d := set.Details
	lastUpdated := d.LastUpdated
	if lastUpdated == nil && len(movement) > 0 {
		lastUpdated = movement[len(movement)-1].Timestamp
	}
	return domain.Metadata{
		ConsignmentNumber: set.ConsignmentNumber,
		BookingReference:  set.BookingReference,
		SourceKind:        set.Kind,
		ServiceType:       d.ServiceType,
		PackageCount:      d.PackageCount,
		PaymentMethod:     d.PaymentMethod,
		RouteSummary:      routeSummary(d.Origin, d.Destination),
		BookingDate:       d.BookingDate,
		StatusLabel:       current.Title(),
		CurrentStepKey:    current.Key(),
		EstimatedDelivery: d.EstimatedDelivery,
		LastUpdated:       lastUpdated,
	}
}
