package service

import (
	"context"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
)

type TestimonialService struct {
	col repository.Collection[content.Testimonial]
	options
}

func NewTestimonialService(col repository.Collection[content.Testimonial], opts ...Option) *TestimonialService {
	return &TestimonialService{col: col, options: buildOptions(opts)}
}

func (s *TestimonialService) List(ctx context.Context, q content.TestimonialQuery) ([]content.Testimonial, error) {
	filter := map[string]any{}
	if q.ActiveOnly {
		filter["is_active"] = true
	}
	return list(ctx, s.col, repository.Query{
		Filter: filter,
		Sort:   "created_at",
		Desc:   true,
		Limit:  content.MaxListResults,
	}, "fetching testimonials")
}

func (s *TestimonialService) Create(ctx context.Context, in content.TestimonialCreate) (*content.Testimonial, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	t := content.NewTestimonial(in, s.newID(), s.now())
	return insert(ctx, s.col, t.ID, &t, "creating testimonial")
}

// Update is not routed over HTTP; it follows the same effective-field rules as
// the other entity updates.
func (s *TestimonialService) Update(ctx context.Context, id string, in content.TestimonialUpdate) (*content.Testimonial, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	const notFound = "Testimonial not found or no changes made"
	set := in.Fields()
	if len(set) == 0 {
		return nil, &content.NotFoundError{Detail: notFound}
	}
	return apply(ctx, s.col, id, set, s.now(), "updating testimonial", notFound)
}
