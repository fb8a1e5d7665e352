package repository

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDuplicateKey = errors.New("duplicate key")

// MemoryCollection is an in-memory Collection used by tests and as a fallback
// when no MongoDB URI is configured. Documents are kept in their BSON form so
// that field names, identifier mapping and modified-count semantics match the
// Mongo implementation.
type MemoryCollection[T any] struct {
	name string

	mu   sync.RWMutex
	ids  []string
	docs map[string]bson.M
}

func NewMemoryCollection[T any](name string) *MemoryCollection[T] {
	return &MemoryCollection[T]{name: name, docs: make(map[string]bson.M)}
}

func (m *MemoryCollection[T]) Name() string { return m.name }

func (m *MemoryCollection[T]) List(ctx context.Context, q Query) ([]T, error) {
	m.mu.RLock()
	matched := make([]bson.M, 0, len(m.docs))
	for _, id := range m.ids {
		d := m.docs[id]
		if matches(d, q.Filter) {
			matched = append(matched, d)
		}
	}
	m.mu.RUnlock()

	if q.Sort != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i][q.Sort], matched[j][q.Sort])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}
	out := make([]T, 0, len(matched))
	for _, d := range matched {
		t, err := decode[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *MemoryCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	m.mu.RLock()
	d, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode[T](d)
}

func (m *MemoryCollection[T]) Insert(ctx context.Context, id string, doc *T) error {
	d, err := normalize(doc)
	if err != nil {
		return err
	}
	if d["_id"] != id {
		return ErrNotInserted
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, id)
	}
	m.docs[id] = d
	m.ids = append(m.ids, id)
	return nil
}

func (m *MemoryCollection[T]) Update(ctx context.Context, id string, set map[string]any) (int64, error) {
	fields, err := normalize(bson.M(set))
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return 0, nil
	}
	changed := false
	for k, v := range fields {
		if !equalValues(d[k], v) {
			changed = true
		}
	}
	if !changed {
		return 0, nil
	}
	next := make(bson.M, len(d)+len(fields))
	for k, v := range d {
		next[k] = v
	}
	for k, v := range fields {
		next[k] = v
	}
	m.docs[id] = next
	return 1, nil
}

func (m *MemoryCollection[T]) Delete(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return 0, nil
	}
	delete(m.docs, id)
	for i, v := range m.ids {
		if v == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (m *MemoryCollection[T]) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.docs))
	m.docs = make(map[string]bson.M)
	m.ids = nil
	return n, nil
}

// NopPinger is always reachable.
type NopPinger struct{}

func (NopPinger) Ping(ctx context.Context) error { return nil }

func normalize(v any) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d bson.M
	if err := bson.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func decode[T any](d bson.M) (*T, error) {
	b, err := bson.Marshal(d)
	if err != nil {
		return nil, err
	}
	var t T
	if err := bson.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func matches(d bson.M, filter map[string]any) bool {
	if len(filter) == 0 {
		return true
	}
	want, err := normalize(bson.M(filter))
	if err != nil {
		return false
	}
	for k, v := range want {
		if !equalValues(d[k], v) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	ta, ba, errA := bson.MarshalValue(a)
	tb, bb, errB := bson.MarshalValue(b)
	if errA != nil || errB != nil {
		return false
	}
	return ta == tb && bytes.Equal(ba, bb)
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case primitive.DateTime:
		if y, ok := b.(primitive.DateTime); ok {
			return cmp.Compare(int64(x), int64(y))
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}
	xf, okA := number(a)
	yf, okB := number(b)
	if okA && okB {
		return cmp.Compare(xf, yf)
	}
	return 0
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
