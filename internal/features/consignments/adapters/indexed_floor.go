package adapters

import (
	"context"

	"courier-tracker/internal/core/store"
)

// IndexedFloorSource reads a live collection's highest consignment number from the
// document store's index.
type IndexedFloorSource struct {
	store      store.Store
	collection string
}

// NewIndexedFloorSource creates a floor source for collection.
func NewIndexedFloorSource(s store.Store, collection string) *IndexedFloorSource {
	return &IndexedFloorSource{
		store:      s,
		collection: collection,
	}
}

// Name returns the collection name.
func (s *IndexedFloorSource) Name() string {
	return s.collection
}

// MaxConsignment returns the highest indexed number, or 0.
func (s *IndexedFloorSource) MaxConsignment(ctx context.Context) (int64, error) {
	return s.store.MaxConsignment(ctx, s.collection)
}
