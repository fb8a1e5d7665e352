package service

import (
	"context"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
)

// PortfolioService implements list/create/update/delete for portfolio items.
type PortfolioService struct {
	col repository.Collection[content.PortfolioItem]
	options
}

func NewPortfolioService(col repository.Collection[content.PortfolioItem], opts ...Option) *PortfolioService {
	return &PortfolioService{col: col, options: buildOptions(opts)}
}

// List returns items newest first, optionally restricted to one type and to active items.
func (s *PortfolioService) List(ctx context.Context, q content.PortfolioQuery) ([]content.PortfolioItem, error) {
	if err := content.Validate(q); err != nil {
		return nil, err
	}
	filter := map[string]any{}
	if q.ActiveOnly {
		filter["is_active"] = true
	}
	if q.Type != nil {
		filter["type"] = *q.Type
	}
	return list(ctx, s.col, repository.Query{
		Filter: filter,
		Sort:   "created_at",
		Desc:   true,
		Limit:  content.MaxListResults,
	}, "fetching portfolio items")
}

func (s *PortfolioService) Create(ctx context.Context, in content.PortfolioItemCreate) (*content.PortfolioItem, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	item := content.NewPortfolioItem(in, s.newID(), s.now())
	return insert(ctx, s.col, item.ID, &item, "creating portfolio item")
}

func (s *PortfolioService) Update(ctx context.Context, id string, in content.PortfolioItemUpdate) (*content.PortfolioItem, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	const notFound = "Portfolio item not found or no changes made"
	set := in.Fields()
	if len(set) == 0 {
		return nil, &content.NotFoundError{Detail: notFound}
	}
	return apply(ctx, s.col, id, set, s.now(), "updating portfolio item", notFound)
}

func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	n, err := s.col.Delete(ctx, id)
	if err != nil {
		return persistence("deleting portfolio item", err)
	}
	if n == 0 {
		return &content.NotFoundError{Detail: "Portfolio item not found"}
	}
	return nil
}
