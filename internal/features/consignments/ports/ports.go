package ports

import (
	"context"

	"courier-tracker/internal/features/consignments/domain"
)

// AllocatorService defines the primary port for consignment number allocation.
type AllocatorService interface {
	// NextID issues a new consignment number, unique and greater than every number
	// already stored in any collection.
	NextID(ctx context.Context) (int64, error)
	// Current returns the counter without changing it.
	Current(ctx context.Context) (*domain.Sequence, error)
}

// CounterStore is the atomic counter record.
type CounterStore interface {
	// Allocate raises the counter to floor if it is lower and increments it, as one
	// atomic operation, returning the new value.
	Allocate(ctx context.Context, floor int64) (int64, error)
	// Current returns the counter value, or 0 if it was never written.
	Current(ctx context.Context) (int64, error)
}

// FloorSource reports the highest consignment number held by one collection.
type FloorSource interface {
	Name() string
	MaxConsignment(ctx context.Context) (int64, error)
}
