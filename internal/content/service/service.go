package service

import (
	"context"
	"errors"
	"time"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
	"github.com/contentcraft/contentcraft/backend/api/pkg/logger"
	"github.com/contentcraft/contentcraft/backend/api/pkg/metrics"
	"github.com/google/uuid"
)

// Clock returns the current time. Stored timestamps are UTC with millisecond
// precision, matching what the document store keeps.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

type options struct {
	now   Clock
	newID func() string
}

type Option func(*options)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(c Clock) Option {
	return func(o *options) { o.now = c }
}

// WithIDGenerator overrides identifier generation (UUIDv4 by default).
func WithIDGenerator(f func() string) Option {
	return func(o *options) { o.newID = f }
}

func buildOptions(opts []Option) options {
	o := options{now: systemClock, newID: uuid.NewString}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func persistence(op string, err error) error {
	perr := &content.PersistenceError{Op: op, Err: err}
	logger.With("op", op).Errorf("storage fault: %v", err)
	metrics.PersistenceErrors.WithLabelValues(op).Inc()
	return perr
}

func list[T any](ctx context.Context, col repository.Collection[T], q repository.Query, op string) ([]T, error) {
	out, err := col.List(ctx, q)
	if err != nil {
		return nil, persistence(op, err)
	}
	return out, nil
}

// insert persists doc under id and returns the stored copy re-read from the store.
func insert[T any](ctx context.Context, col repository.Collection[T], id string, doc *T, op string) (*T, error) {
	if err := col.Insert(ctx, id, doc); err != nil {
		return nil, persistence(op, err)
	}
	stored, err := col.Get(ctx, id)
	if err != nil {
		return nil, persistence(op, err)
	}
	return stored, nil
}

// apply writes an effective field set plus a refreshed updated_at. A zero
// modified count is reported as notFound, whether the id is absent or the
// values were already current.
func apply[T any](ctx context.Context, col repository.Collection[T], id string, set map[string]any, now time.Time, op, notFound string) (*T, error) {
	set["updated_at"] = now
	n, err := col.Update(ctx, id, set)
	if err != nil {
		return nil, persistence(op, err)
	}
	if n == 0 {
		return nil, &content.NotFoundError{Detail: notFound}
	}
	doc, err := col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &content.NotFoundError{Detail: notFound}
		}
		return nil, persistence(op, err)
	}
	return doc, nil
}
