// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/naka-gawa/github-profile-assets/internal/gateway"
)

// Aggregator is the use case for aggregating GitHub stats.
// It orchestrates the fetching and ranking of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ContributionStats is the ranked view of the commit contribution window.
// Summary covers every repository with commits; Top holds only the first k.
type ContributionStats struct {
	From    time.Time             `json:"from"`
	To      time.Time             `json:"to"`
	Top     []domain.Contribution `json:"top"`
	Summary Summary               `json:"summary"`
}

// RepositoryStats holds every owned repository in source order plus the ranked overview.
type RepositoryStats struct {
	All      []domain.Repository `json:"all"`
	Overview []domain.Repository `json:"overview"`
	Summary  Summary             `json:"summary"`
}

// Contributions fetches the commit contributions of the window ending at now
// and returns the top k repositories.
func (a *Aggregator) Contributions(ctx context.Context, login string, window time.Duration, k int, now time.Time) (*ContributionStats, error) {
	to := now.UTC()
	from := to.Add(-window)

	records, err := a.fetcher.FetchContributions(ctx, login, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch contributions: %w", err)
	}
	ranked := RankContributions(records, 0)
	top := ranked
	if k > 0 && len(top) > k {
		top = top[:k]
	}
	a.logger.Info("Ranked contributions", "repositories", len(ranked), "shown", len(top))

	return &ContributionStats{
		From:    from,
		To:      to,
		Top:     top,
		Summary: Summarize(ContributionCounts(ranked)),
	}, nil
}

// Repositories fetches all owned repositories and ranks the overview.
func (a *Aggregator) Repositories(ctx context.Context, login string) (*RepositoryStats, error) {
	repos, err := a.fetcher.FetchRepositories(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetch repositories: %w", err)
	}
	overview := RankOverview(repos, login)
	a.logger.Info("Ranked repositories", "repositories", len(repos), "overview", len(overview))

	return &RepositoryStats{
		All:      repos,
		Overview: overview,
		Summary:  Summarize(RepositoryCounts(overview)),
	}, nil
}

// Profile fetches the profile header of the user.
func (a *Aggregator) Profile(ctx context.Context, login string) (*domain.Profile, error) {
	profile, err := a.fetcher.FetchProfile(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return profile, nil
}
