package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Store is the document store port. Documents are opaque JSON blobs addressed by key;
// each collection additionally keeps an index of the consignment numbers it holds.
type Store interface {
	// Get retrieves a value by key. Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// IndexConsignment records that collection holds the given consignment number.
	IndexConsignment(ctx context.Context, collection string, number int64) error

	// MaxConsignment returns the highest consignment number indexed for collection, or 0.
	MaxConsignment(ctx context.Context, collection string) (int64, error)

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}

// DocumentKey is the key of one document in a collection.
func DocumentKey(collection, id string) string {
	return collection + ":" + id
}

// IndexKey is the key of the sorted set holding a collection's consignment numbers.
func IndexKey(collection string) string {
	return "idx:" + collection + ":consignments"
}
