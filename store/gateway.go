package store

import (
	"context"
	"fmt"
	"time"

	"laundry-delivery-api/codec"
	"laundry-delivery-api/models"
)

const (
	DefaultLimit = 50

	fieldStatus    = "status"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// Gateway runs validate/encode/persist/decode for any collection. A nil
// Store means the process started without a database; every operation
// then fails fast with ErrStorageUnavailable.
type Gateway struct {
	store Store
	now   func() time.Time
}

func NewGateway(s Store) *Gateway {
	return &Gateway{store: s, now: time.Now}
}

// Store returns the underlying backend, or nil in degraded mode
func (g *Gateway) timestamp() time.Time {
	// BSON datetimes hold milliseconds
	return g.now().UTC().Truncate(time.Millisecond)
}

// CreateDocument validates and stores a record, returning its new id.
func (g *Gateway) CreateDocument(ctx context.Context, collection string, record models.Record) (string, error) {
	if g.store == nil {
		return "", ErrStorageUnavailable
	}
	if err := models.Validate(record); err != nil {
		return "", err
	}
	doc, err := codec.Encode(record)
	if err != nil {
		return "", err
	}
	now := g.timestamp()
	doc.Set(fieldCreatedAt, now)
	doc.Set(fieldUpdatedAt, now)

	oid, err := g.store.Insert(ctx, collection, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return oid.Hex(), nil
}

// GetDocuments returns up to limit decoded documents matching filter, in
// the store's natural order. A zero limit means DefaultLimit.
func (g *Gateway) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]codec.Document, error) {
	if g.store == nil {
		return nil, ErrStorageUnavailable
	}
	if limit < 0 {
		return nil, &models.ValidationError{Field: "limit", Rule: "gt=0", Value: limit}
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	docs, err := g.store.Find(ctx, collection, normalizeFilter(filter), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	out := make([]codec.Document, 0, len(docs))
	for _, d := range docs {
		if len(out) == limit {
			break
		}
		out = append(out, codec.Decode(d))
	}
	return out, nil
}

// GetDocument returns a single decoded document by id
func (g *Gateway) GetDocument(ctx context.Context, collection, id string) (codec.Document, error) {
	if g.store == nil {
		return nil, ErrStorageUnavailable
	}
	oid, err := codec.ParseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := g.store.FindByID(ctx, collection, oid)
	if err != nil {
		return nil, err
	}
	return codec.Decode(doc), nil
}

// UpdateStatus sets the status field of one document and returns it
// decoded. Only enum membership is checked; any declared status may
// follow any other.
func (g *Gateway) UpdateStatus(ctx context.Context, collection, id string, status models.Enum) (codec.Document, error) {
	if g.store == nil {
		return nil, ErrStorageUnavailable
	}
	if err := models.ValidateEnum(fieldStatus, status); err != nil {
		return nil, err
	}
	oid, err := codec.ParseID(id)
	if err != nil {
		return nil, err
	}
	set := codec.Document{
		{Key: fieldStatus, Value: status.String()},
		{Key: fieldUpdatedAt, Value: g.timestamp()},
	}
	doc, err := g.store.Update(ctx, collection, oid, set)
	if err != nil {
		return nil, err
	}
	return codec.Decode(doc), nil
}

func normalizeFilter(f Filter) Filter {
	if len(f) == 0 {
		return Filter{}
	}
	out := make(Filter, len(f))
	for k, v := range f {
		if e, ok := v.(models.Enum); ok {
			v = e.String()
		}
		out[k] = v
	}
	return out
}
