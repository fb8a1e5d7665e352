package content

import "time"

// Constructors stamp the server-derived fields of a validated create payload.
// created_at and updated_at always start equal.

func NewPortfolioItem(in PortfolioItemCreate, id string, now time.Time) PortfolioItem {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return PortfolioItem{
		ID:          id,
		Title:       in.Title,
		Client:      in.Client,
		Type:        in.Type,
		Description: in.Description,
		Results:     in.Results,
		Tags:        tags,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func NewTestimonial(in TestimonialCreate, id string, now time.Time) Testimonial {
	return Testimonial{
		ID:          id,
		Name:        in.Name,
		Channel:     in.Channel,
		Subscribers: in.Subscribers,
		Testimonial: in.Testimonial,
		Rating:      in.Rating,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func NewStats(in StatsCreate, id string, now time.Time) Stats {
	s := Stats{ID: id, Number: in.Number, Label: in.Label, UpdatedAt: now}
	if in.Order != nil {
		s.Order = *in.Order
	}
	return s
}

func NewContactInquiry(in ContactInquiryCreate, id string, now time.Time) ContactInquiry {
	return ContactInquiry{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Channel:     in.Channel,
		Subscribers: in.Subscribers,
		Service:     in.Service,
		Project:     in.Project,
		Budget:      in.Budget,
		Message:     in.Message,
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
