package usecase_aggregation_test

import (
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
)

type MergeSuite struct {
	suite.Suite
}

func yr(start, end int) model.YearRange {
	return model.YearRange{Start: start, End: end}
}

func (s *MergeSuite) TestMergeYearRanges(t provider.T) {
	tt := []struct {
		name   string
		input  []model.YearRange
		expect []model.YearRange
	}{
		{
			name:   "overlapping ranges coalesce",
			input:  []model.YearRange{yr(2000, 2005), yr(2004, 2010)},
			expect: []model.YearRange{yr(2000, 2010)},
		},
		{
			name:   "adjacent ranges coalesce",
			input:  []model.YearRange{yr(2000, 2005), yr(2006, 2010)},
			expect: []model.YearRange{yr(2000, 2010)},
		},
		{
			name:   "gap keeps ranges apart",
			input:  []model.YearRange{yr(2000, 2005), yr(2008, 2010)},
			expect: []model.YearRange{yr(2000, 2005), yr(2008, 2010)},
		},
		{
			name:   "input order does not matter",
			input:  []model.YearRange{yr(2008, 2010), yr(1990, 1995), yr(2000, 2005), yr(1994, 1999)},
			expect: []model.YearRange{yr(1990, 2005), yr(2008, 2010)},
		},
		{
			name:   "contained range is absorbed",
			input:  []model.YearRange{yr(1980, 2020), yr(1990, 1991)},
			expect: []model.YearRange{yr(1980, 2020)},
		},
		{
			name:   "single year ranges",
			input:  []model.YearRange{yr(2001, 2001), yr(2002, 2002), yr(2004, 2004)},
			expect: []model.YearRange{yr(2001, 2002), yr(2004, 2004)},
		},
		{
			name:   "empty input",
			input:  nil,
			expect: nil,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t provider.T) {
			assert.Equal(t, tc.expect, usecase_aggregation.MergeYearRanges(tc.input))
		})
	}
}

func (s *MergeSuite) TestMergeYearRangesIsIdempotent(t provider.T) {
	input := []model.YearRange{yr(2004, 2010), yr(1990, 1995), yr(2000, 2005)}

	once := usecase_aggregation.MergeYearRanges(input)
	twice := usecase_aggregation.MergeYearRanges(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, []model.YearRange{yr(2004, 2010), yr(1990, 1995), yr(2000, 2005)}, input, "input must not be reordered")
}

func (s *MergeSuite) TestSplitWidest(t provider.T) {
	t.Run("widest range becomes primary", func(t provider.T) {
		primary, rest := usecase_aggregation.SplitWidest([]model.YearRange{yr(1990, 1995), yr(2000, 2010)})

		assert.Equal(t, yr(2000, 2010), primary)
		assert.Equal(t, []model.YearRange{yr(1990, 1995)}, rest)
	})

	t.Run("first range wins a tie", func(t provider.T) {
		primary, rest := usecase_aggregation.SplitWidest([]model.YearRange{yr(1990, 1995), yr(2000, 2005)})

		assert.Equal(t, yr(1990, 1995), primary)
		assert.Equal(t, []model.YearRange{yr(2000, 2005)}, rest)
	})

	t.Run("single range has no rest", func(t provider.T) {
		primary, rest := usecase_aggregation.SplitWidest([]model.YearRange{yr(2000, 2000)})

		assert.Equal(t, yr(2000, 2000), primary)
		assert.Empty(t, rest)
	})
}

func (s *MergeSuite) TestEnumerateYears(t provider.T) {
	t.Run("secondary range goes year by year from the end", func(t provider.T) {
		assert.Equal(t, []int{1995, 1994, 1993, 1992, 1991, 1990},
			usecase_aggregation.EnumerateYears([]model.YearRange{yr(1990, 1995)}, usecase_aggregation.MaxExtraYears))
	})

	t.Run("twenty year range is capped", func(t provider.T) {
		years := usecase_aggregation.EnumerateYears([]model.YearRange{yr(1960, 1979)}, usecase_aggregation.MaxExtraYears)

		assert.Len(t, years, usecase_aggregation.MaxExtraYears)
		assert.Equal(t, 1979, years[0])
		assert.Equal(t, 1965, years[len(years)-1])
	})

	t.Run("cap is global across ranges and newest range goes first", func(t provider.T) {
		years := usecase_aggregation.EnumerateYears(
			[]model.YearRange{yr(1950, 1959), yr(1970, 1979)},
			usecase_aggregation.MaxExtraYears,
		)

		assert.Equal(t, []int{
			1979, 1978, 1977, 1976, 1975, 1974, 1973, 1972, 1971, 1970,
			1959, 1958, 1957, 1956, 1955,
		}, years)
	})

	t.Run("nothing to enumerate", func(t provider.T) {
		assert.Empty(t, usecase_aggregation.EnumerateYears(nil, usecase_aggregation.MaxExtraYears))
		assert.Empty(t, usecase_aggregation.EnumerateYears([]model.YearRange{yr(1990, 1995)}, 0))
	})
}

func (s *MergeSuite) TestMergeGenres(t provider.T) {
	t.Run("union without duplicates in first appearance order", func(t provider.T) {
		prefs := []model.Preference{
			{Genres: []string{"action", "comedy"}},
			{Genres: []string{"comedy", "drama"}},
		}

		assert.Equal(t, []string{"action", "comedy", "drama"}, usecase_aggregation.MergeGenres(prefs))
	})

	t.Run("duplicates inside one submission", func(t provider.T) {
		prefs := []model.Preference{
			{Genres: []string{"драма", "драма", "комедия"}},
		}

		assert.Equal(t, []string{"драма", "комедия"}, usecase_aggregation.MergeGenres(prefs))
	})

	t.Run("no preferences", func(t provider.T) {
		assert.Empty(t, usecase_aggregation.MergeGenres(nil))
	})
}

func TestMergeSuite(t *testing.T) {
	suite.RunSuite(t, new(MergeSuite))
}
