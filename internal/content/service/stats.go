package service

import (
	"context"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
)

type StatsService struct {
	col repository.Collection[content.Stats]
	options
}

func NewStatsService(col repository.Collection[content.Stats], opts ...Option) *StatsService {
	return &StatsService{col: col, options: buildOptions(opts)}
}

// List returns every stat in ascending display order.
func (s *StatsService) List(ctx context.Context) ([]content.Stats, error) {
	return list(ctx, s.col, repository.Query{
		Sort:  "order",
		Limit: content.MaxStatsResults,
	}, "fetching stats")
}

func (s *StatsService) Create(ctx context.Context, in content.StatsCreate) (*content.Stats, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	st := content.NewStats(in, s.newID(), s.now())
	return insert(ctx, s.col, st.ID, &st, "creating stats")
}

func (s *StatsService) Update(ctx context.Context, id string, in content.StatsUpdate) (*content.Stats, error) {
	if err := content.Validate(in); err != nil {
		return nil, err
	}
	const notFound = "Stats item not found or no changes made"
	set := in.Fields()
	if len(set) == 0 {
		return nil, &content.NotFoundError{Detail: notFound}
	}
	return apply(ctx, s.col, id, set, s.now(), "updating stats", notFound)
}
