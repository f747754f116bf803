package infra_kinopoisk

import (
	"fmt"
	"net/url"
	"strconv"

	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
)

// EncodeQuery turns a catalog query into v1.4 /movie parameters.
//
// Multi-valued filters are sent as repeated keys, which the API reads as a
// union: the primary range goes out as year=start-end and each extra year
// as one more year=N. Genres use the same rule with genres.name.
func EncodeQuery(q usecase_aggregation.CatalogQuery) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))

	if q.Years.Start == q.Years.End {
		params.Add("year", strconv.Itoa(q.Years.Start))
	} else {
		params.Add("year", fmt.Sprintf("%d-%d", q.Years.Start, q.Years.End))
	}
	for _, y := range q.ExtraYears {
		params.Add("year", strconv.Itoa(y))
	}

	for _, g := range q.Genres {
		params.Add("genres.name", g)
	}
	for _, f := range q.SelectFields {
		params.Add("selectFields", f)
	}
	for _, f := range q.NotNullFields {
		params.Add("notNullFields", f)
	}

	if q.SortField != "" {
		params.Set("sortField", q.SortField)
		params.Set("sortType", strconv.Itoa(q.SortType))
	}
	for _, t := range q.Types {
		params.Add("type", t)
	}

	return params
}
