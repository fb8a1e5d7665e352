package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrNotInserted is returned when the store acknowledges an insert without an identifier.
	ErrNotInserted = errors.New("document not inserted")
)

// Query describes a list operation: equality filters, one sort key and a cap.
type Query struct {
	Filter map[string]any
	Sort   string
	Desc   bool
	Limit  int64
}

// Collection is the storage gateway for one entity type. Documents are keyed
// by the caller-supplied public identifier, stored as the collection's _id;
// the store never assigns identifiers.
type Collection[T any] interface {
	Name() string
	List(ctx context.Context, q Query) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, id string, doc *T) error
	// Update applies set to the document with the given id and reports how
	// many documents actually changed.
	Update(ctx context.Context, id string, set map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Pinger reports store reachability for readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}
