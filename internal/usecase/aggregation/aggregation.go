package usecase_aggregation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AdAndRoll/movie-search-server/internal/model"
)

var (
	ErrExternalAPI  = errors.New("catalog request failed")
	ErrStore        = errors.New("store failure")
	ErrResultExists = errors.New("room result already exists")
)

//go:generate mockery --name=Catalog --output=./mocks/aggregation/catalog --filename=catalog.go
type Catalog interface {
	Search(ctx context.Context, q CatalogQuery) ([]model.Movie, error)
}

//go:generate mockery --name=ResultRepository --output=./mocks/aggregation/repository --filename=repository.go
type ResultRepository interface {
	// Create must return ErrResultExists if the room already has a result.
	Create(ctx context.Context, result model.RoomResult) error
}

type Usecase struct {
	catalog Catalog
	results ResultRepository
	opts    QueryOptions

	logger *slog.Logger
}

func New(
	catalog Catalog,
	results ResultRepository,
	opts QueryOptions,
) *Usecase {
	return &Usecase{
		catalog: catalog,
		results: results,
		opts:    opts.withDefaults(),
		logger:  slog.Default(),
	}
}

// Aggregate runs the merged query once and stores what the catalog returned.
// Nothing is stored when the catalog fails, so the room can be aggregated again later.
// ErrResultExists is returned as is; callers decide whether it is a failure.
func (u *Usecase) Aggregate(ctx context.Context, roomID model.RoomID, prefs []model.Preference) (model.RoomResult, error) {
	q, err := BuildQuery(prefs, u.opts)
	if err != nil {
		return model.RoomResult{}, err
	}

	u.logger.Info("aggregating room",
		slog.String("room_id", string(roomID)),
		slog.Int("preferences", len(prefs)),
		slog.Any("years", q.Years),
		slog.Any("extra_years", q.ExtraYears),
		slog.Any("genres", q.Genres),
	)

	movies, err := u.catalog.Search(ctx, q)
	if err != nil {
		return model.RoomResult{}, fmt.Errorf("%w: %w", ErrExternalAPI, err)
	}
	if movies == nil {
		movies = []model.Movie{}
	}

	result := model.RoomResult{
		RoomID: roomID,
		Movies: movies,
	}
	if err := u.results.Create(ctx, result); err != nil {
		if errors.Is(err, ErrResultExists) {
			return model.RoomResult{}, ErrResultExists
		}
		return model.RoomResult{}, errors.Join(ErrStore, err)
	}

	return result, nil
}
