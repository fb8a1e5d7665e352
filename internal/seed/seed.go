// Package seed resets the showcase collections to a known fixture set.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
	"github.com/contentcraft/contentcraft/backend/api/internal/storage"
	"github.com/contentcraft/contentcraft/backend/api/pkg/logger"
	"github.com/google/uuid"
)

//go:embed fixtures.json
var defaultFixtures []byte

// DefaultFixturesJSON returns the built-in fixture document.
func DefaultFixturesJSON() []byte {
	return bytes.Clone(defaultFixtures)
}

// Fixtures is the seed document. Entries use the create payload schemas and
// are validated the same way API input is.
type Fixtures struct {
	Portfolio    []content.PortfolioItemCreate `json:"portfolio_items"`
	Testimonials []content.TestimonialCreate   `json:"testimonials"`
	Stats        []content.StatsCreate         `json:"stats"`
}

// Default parses the built-in fixtures.
func Default() (*Fixtures, error) {
	return Parse(bytes.NewReader(defaultFixtures))
}

// Load reads and parses the fixture object stored under key.
func Load(ctx context.Context, store storage.Store, key string) (*Fixtures, error) {
	rc, err := store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open fixtures %q: %w", key, err)
	}
	defer rc.Close()
	return Parse(rc)
}

// Parse decodes a fixture document and validates every entry.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	for i, p := range fx.Portfolio {
		if err := content.Validate(p); err != nil {
			return nil, fmt.Errorf("portfolio_items[%d]: %w", i, err)
		}
	}
	for i, t := range fx.Testimonials {
		if err := content.Validate(t); err != nil {
			return nil, fmt.Errorf("testimonials[%d]: %w", i, err)
		}
	}
	for i, s := range fx.Stats {
		if err := content.Validate(s); err != nil {
			return nil, fmt.Errorf("stats[%d]: %w", i, err)
		}
	}
	return &fx, nil
}

// Collections are the stores a seed run resets. Contact inquiries are never touched.
type Collections struct {
	Portfolio    repository.Collection[content.PortfolioItem]
	Testimonials repository.Collection[content.Testimonial]
	Stats        repository.Collection[content.Stats]
}

type Options struct {
	DryRun bool
	Now    func() time.Time
	NewID  func() string
}

type Result struct {
	Cleared      map[string]int64
	Portfolio    int
	Testimonials int
	Stats        int
}

// Run clears the portfolio, testimonial and stats collections and inserts fx.
// Portfolio items and testimonials get created_at one second apart, newest
// first, so the public newest-first listings follow fixture order.
func Run(ctx context.Context, cols Collections, fx *Fixtures, opts Options) (*Result, error) {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	res := &Result{
		Cleared:      map[string]int64{},
		Portfolio:    len(fx.Portfolio),
		Testimonials: len(fx.Testimonials),
		Stats:        len(fx.Stats),
	}
	if opts.DryRun {
		logger.Infof("dry run: would seed %d portfolio items, %d testimonials, %d stats", res.Portfolio, res.Testimonials, res.Stats)
		return res, nil
	}

	logger.Info("Clearing existing data...")
	for _, c := range []interface {
		Name() string
		DeleteAll(context.Context) (int64, error)
	}{cols.Portfolio, cols.Testimonials, cols.Stats} {
		n, err := c.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear %s: %w", c.Name(), err)
		}
		res.Cleared[c.Name()] = n
	}

	base := opts.Now()
	at := func(i int) time.Time { return base.Add(-time.Duration(i) * time.Second) }

	for i, in := range fx.Portfolio {
		id := opts.NewID()
		item := content.NewPortfolioItem(in, id, at(i))
		if err := cols.Portfolio.Insert(ctx, id, &item); err != nil {
			return nil, fmt.Errorf("insert portfolio item %q: %w", in.Title, err)
		}
	}
	logger.Infof("Inserted %d portfolio items", res.Portfolio)

	for i, in := range fx.Testimonials {
		id := opts.NewID()
		t := content.NewTestimonial(in, id, at(i))
		if err := cols.Testimonials.Insert(ctx, id, &t); err != nil {
			return nil, fmt.Errorf("insert testimonial %q: %w", in.Name, err)
		}
	}
	logger.Infof("Inserted %d testimonials", res.Testimonials)

	for _, in := range fx.Stats {
		id := opts.NewID()
		st := content.NewStats(in, id, base)
		if err := cols.Stats.Insert(ctx, id, &st); err != nil {
			return nil, fmt.Errorf("insert stats %q: %w", in.Label, err)
		}
	}
	logger.Infof("Inserted %d stats", res.Stats)

	return res, nil
}
