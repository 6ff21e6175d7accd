package ports

import (
	"context"
	"errors"

	"courier-tracker/internal/features/tracking/domain"
)

// ErrDocumentNotFound is returned when a collection holds no document for an identifier.
var ErrDocumentNotFound = errors.New("document not found")

// TrackingService defines the primary port for tracking lookups.
type TrackingService interface {
	// GetTracking returns the full reconciled view of a shipment.
	GetTracking(ctx context.Context, identifier string) (*domain.TrackingResponse, error)
	// GetMovement returns only the shipment's movement history.
	GetMovement(ctx context.Context, identifier string) (*domain.MovementSummary, error)
}

// DocumentRepository defines the secondary port for stored source documents.
type DocumentRepository interface {
	// Find loads the document of the given kind addressed by consignment number or
	// booking reference. Returns ErrDocumentNotFound when the collection has none.
	Find(ctx context.Context, kind domain.SourceKind, identifier string) (domain.SourceDocument, error)
	// Save stores a document in its kind's collection and indexes its consignment number.
	Save(ctx context.Context, doc domain.SourceDocument) error
}
