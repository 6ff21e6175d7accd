package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"courier-tracker/internal/core/store"
	"courier-tracker/internal/features/tracking/domain"
	"courier-tracker/internal/features/tracking/ports"
)

// RedisDocumentRepository implements ports.DocumentRepository on top of the document store.
// Each source kind is its own collection; documents are keyed by consignment number and a
// reference key maps booking references that differ from the number.
type RedisDocumentRepository struct {
	store store.Store
}

// NewRedisDocumentRepository creates a new RedisDocumentRepository.
func NewRedisDocumentRepository(s store.Store) *RedisDocumentRepository {
	return &RedisDocumentRepository{
		store: s,
	}
}

// Collection returns the collection name that holds documents of kind.
func Collection(kind domain.SourceKind) string {
	return string(kind)
}

func referenceKey(collection, reference string) string {
	return "ref:" + collection + ":" + reference
}

// Find loads a document by consignment number, falling back to the booking reference.
func (r *RedisDocumentRepository) Find(ctx context.Context, kind domain.SourceKind, identifier string) (domain.SourceDocument, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ports.ErrDocumentNotFound
	}
	collection := Collection(kind)

	data, err := r.store.Get(ctx, store.DocumentKey(collection, identifier))
	if errors.Is(err, store.ErrNotFound) {
		data, err = r.findByReference(ctx, collection, identifier)
	}
	if err != nil {
		return nil, err
	}

	doc, err := newDocument(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s document %s: %w", collection, identifier, err)
	}
	return doc, nil
}

func (r *RedisDocumentRepository) findByReference(ctx context.Context, collection, reference string) ([]byte, error) {
	number, err := r.store.Get(ctx, referenceKey(collection, reference))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ports.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reference %s: %w", reference, err)
	}

	data, err := r.store.Get(ctx, store.DocumentKey(collection, string(number)))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ports.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s document %s: %w", collection, number, err)
	}
	return data, nil
}

// Save stores the document, its reference alias and its consignment index entry.
func (r *RedisDocumentRepository) Save(ctx context.Context, doc domain.SourceDocument) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	number, reference := doc.Identity()
	if number <= 0 {
		return fmt.Errorf("invalid consignment number %d", number)
	}
	collection := Collection(doc.Kind())
	id := strconv.FormatInt(number, 10)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", collection, err)
	}
	if err := r.store.Set(ctx, store.DocumentKey(collection, id), data, 0); err != nil {
		return fmt.Errorf("failed to save %s document %s: %w", collection, id, err)
	}

	if reference != "" && reference != id {
		if err := r.store.Set(ctx, referenceKey(collection, reference), []byte(id), 0); err != nil {
			return fmt.Errorf("failed to save reference %s: %w", reference, err)
		}
	}

	if err := r.store.IndexConsignment(ctx, collection, number); err != nil {
		return fmt.Errorf("failed to index %s document %s: %w", collection, id, err)
	}
	return nil
}

func newDocument(kind domain.SourceKind) (domain.SourceDocument, error) {
	switch kind {
	case domain.SourceTracking:
		return &domain.TrackingDocument{}, nil
	case domain.SourceMedicine:
		return &domain.MedicineDocument{}, nil
	case domain.SourceCustomer:
		return &domain.CustomerDocument{}, nil
	}
	return nil, fmt.Errorf("unknown source kind %q", kind)
}
