package service

import (
	"context"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
	"github.com/contentcraft/contentcraft/backend/api/pkg/logger"
	"github.com/contentcraft/contentcraft/backend/api/pkg/metrics"
)

type InquiryService struct {
	col repository.Collection[content.ContactInquiry]
	options
}

func NewInquiryService(col repository.Collection[content.ContactInquiry], opts ...Option) *InquiryService {
	return &InquiryService{col: col, options: buildOptions(opts)}
}

// Create stores a new inquiry with status "new".
func (s *InquiryService) Create(ctx context.Context, in content.ContactInquiryCreate) (*content.ContactInquiry, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	inq := content.NewContactInquiry(in, s.newID(), s.now())
	stored, err := insert(ctx, s.col, inq.ID, &inq, "submitting inquiry")
	if err != nil {
		return nil, err
	}
	logger.Infof("New contact inquiry received from %s", in.Email)
	metrics.InquiriesReceived.Inc()
	return stored, nil
}

// List returns inquiries newest first. A zero limit means the default.
func (s *InquiryService) List(ctx context.Context, q content.InquiryQuery) ([]content.ContactInquiry, error) {
	if q.Limit == 0 {
		q.Limit = content.DefaultInquiryLimit
	}
	if err := content.Validate(q); err != nil {
		return nil, err
	}
	filter := map[string]any{}
	if q.Status != nil {
		filter["status"] = *q.Status
	}
	return list(ctx, s.col, repository.Query{
		Filter: filter,
		Sort:   "created_at",
		Desc:   true,
		Limit:  int64(q.Limit),
	}, "fetching contact inquiries")
}

// UpdateStatus sets the status when present and always refreshes updated_at.
func (s *InquiryService) UpdateStatus(ctx context.Context, id string, in content.ContactInquiryUpdate) (*content.ContactInquiry, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	set := map[string]any{}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	return apply(ctx, s.col, id, set, s.now(), "updating inquiry status", "Contact inquiry not found")
}
