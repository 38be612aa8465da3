package usecase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-profile-assets/internal/domain"
)

// RankContributions orders contributions by commit count, highest first, and
// keeps the first k. Equal counts keep their input order. k <= 0 keeps all.
// Records without commits never appear in the result.
func RankContributions(records []domain.Contribution, k int) []domain.Contribution {
	ranked := make([]domain.Contribution, 0, len(records))
	for _, r := range records {
		if r.Commits >= 1 {
			ranked = append(ranked, r)
		}
	}
	slices.SortStableFunc(ranked, func(a, b domain.Contribution) int {
		return cmp.Compare(b.Commits, a.Commits)
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// RankOverview drops the profile repository (the one named after the login,
// compared case-insensitively) and orders the rest by default-branch commits,
// highest first. Ties are broken by qualified name so the result does not
// depend on the order GitHub returned.
func RankOverview(repos []domain.Repository, login string) []domain.Repository {
	ranked := make([]domain.Repository, 0, len(repos))
	excluded := false
	for _, r := range repos {
		if !excluded && strings.EqualFold(r.ShortName(), login) {
			excluded = true
			continue
		}
		ranked = append(ranked, r)
	}
	slices.SortStableFunc(ranked, func(a, b domain.Repository) int {
		if c := cmp.Compare(b.Commits, a.Commits); c != 0 {
			return c
		}
		return cmp.Compare(a.NameWithOwner, b.NameWithOwner)
	})
	return ranked
}

// Summary describes the magnitudes of a ranked row set.
type Summary struct {
	Count  int     `json:"count"`
	Total  int     `json:"total"`
	Max    int     `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes the summary of values. An empty input gives a zero Summary.
func Summarize(values []int) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	data := make(stats.Float64Data, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	// The stats functions only fail on empty input, which is handled above.
	total, _ := data.Sum()
	maximum, _ := data.Max()
	median, _ := data.Median()
	return Summary{
		Count:  len(values),
		Total:  int(total),
		Max:    int(maximum),
		Median: median,
	}
}

// ContributionCounts extracts the commit counts in row order.
func ContributionCounts(records []domain.Contribution) []int {
	counts := make([]int, len(records))
	for i, r := range records {
		counts[i] = r.Commits
	}
	return counts
}

// RepositoryCounts extracts the default-branch commit counts in row order.
func RepositoryCounts(repos []domain.Repository) []int {
	counts := make([]int, len(repos))
	for i, r := range repos {
		counts[i] = r.Commits
	}
	return counts
}
