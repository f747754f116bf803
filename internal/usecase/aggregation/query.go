package usecase_aggregation

import (
	"errors"

	"github.com/AdAndRoll/movie-search-server/internal/model"
)

const (
	firstPage       = 1
	defaultLimit    = 15
	sortByRatingKP  = "rating.kp"
	sortDescending  = -1
	contentTypeFilm = "movie"
)

var (
	selectFields  = []string{"id", "name", "year", "movieLength", "rating", "description", "genres", "poster"}
	notNullFields = []string{"name", "description", "poster.url"}
)

var ErrNoPreferences = errors.New("no preferences to aggregate")

// CatalogQuery describes one catalog search. It knows nothing about the
// wire encoding; the catalog client serializes it.
type CatalogQuery struct {
	Page  int
	Limit int

	// Years is the primary bounded filter, ExtraYears are discrete years on top of it.
	Years      model.YearRange
	ExtraYears []int
	Genres     []string

	SelectFields  []string
	NotNullFields []string
	SortField     string
	SortType      int
	Types         []string
}

type QueryOptions struct {
	Limit int
	Types []string
}

func (o QueryOptions) withDefaults() QueryOptions {
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if len(o.Types) == 0 {
		o.Types = []string{contentTypeFilm}
	}
	return o
}

// BuildQuery merges everyone's criteria into a single first-page catalog query.
func BuildQuery(prefs []model.Preference, opts QueryOptions) (CatalogQuery, error) {
	if len(prefs) == 0 {
		return CatalogQuery{}, ErrNoPreferences
	}
	opts = opts.withDefaults()

	ranges := make([]model.YearRange, 0, len(prefs))
	for _, p := range prefs {
		ranges = append(ranges, p.Years)
	}
	primary, rest := SplitWidest(MergeYearRanges(ranges))

	return CatalogQuery{
		Page:          firstPage,
		Limit:         opts.Limit,
		Years:         primary,
		ExtraYears:    EnumerateYears(rest, MaxExtraYears),
		Genres:        MergeGenres(prefs),
		SelectFields:  append([]string(nil), selectFields...),
		NotNullFields: append([]string(nil), notNullFields...),
		SortField:     sortByRatingKP,
		SortType:      sortDescending,
		Types:         append([]string(nil), opts.Types...),
	}, nil
}
