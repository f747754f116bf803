package usecase_aggregation

import (
	"slices"

	"github.com/AdAndRoll/movie-search-server/internal/model"
)

// MaxExtraYears bounds how many discrete years ride along with the primary range.
const MaxExtraYears = 15

// MergeGenres returns the union of all genres in order of first appearance.
func MergeGenres(prefs []model.Preference) []string {
	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, p := range prefs {
		for _, g := range p.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}
	return genres
}

// MergeYearRanges coalesces overlapping and adjacent ranges.
// The result is sorted by Start and no two ranges touch.
func MergeYearRanges(ranges []model.YearRange) []model.YearRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b model.YearRange) int {
		return a.Start - b.Start
	})

	merged := make([]model.YearRange, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= cur.End+1 {
			cur.End = max(cur.End, next.End)
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}

// SplitWidest picks the widest range as the primary filter; the first one wins a tie.
func SplitWidest(merged []model.YearRange) (primary model.YearRange, rest []model.YearRange) {
	if len(merged) == 0 {
		return model.YearRange{}, nil
	}

	widest := 0
	for i, r := range merged {
		if r.Width() > merged[widest].Width() {
			widest = i
		}
	}

	rest = make([]model.YearRange, 0, len(merged)-1)
	rest = append(rest, merged[:widest]...)
	rest = append(rest, merged[widest+1:]...)
	return merged[widest], rest
}

// EnumerateYears lists the years of every range newest first, at most limit of them.
// Ranges are walked from the most recent one, so the oldest years are the ones cut.
func EnumerateYears(ranges []model.YearRange, limit int) []int {
	if limit <= 0 {
		return nil
	}

	ordered := slices.Clone(ranges)
	slices.SortFunc(ordered, func(a, b model.YearRange) int {
		return b.Start - a.Start
	})

	years := make([]int, 0, limit)
	for _, r := range ordered {
		for y := r.End; y >= r.Start; y-- {
			if len(years) == limit {
				return years
			}
			years = append(years, y)
		}
	}
	return years
}
