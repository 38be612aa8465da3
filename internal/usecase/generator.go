package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/github-profile-assets/internal/card"
	"github.com/naka-gawa/github-profile-assets/internal/config"
	"github.com/naka-gawa/github-profile-assets/internal/markdown"
	"github.com/naka-gawa/github-profile-assets/internal/splice"
)

// Artifact file names inside the output directory.
const (
	CommitsFile      = "repo-commits.svg"
	OverviewFile     = "repo-overview.svg"
	RepositoriesFile = "repositories.md"
	LinksFile        = "links-card.svg"
)

// readmeCandidates are tried in order when no README path is configured.
var readmeCandidates = []string{"README.md", "Readme.md"}

// Generator runs the whole pipeline: fetch, rank, lay out, write, splice.
// Stages run one after another and the first error stops the run.
type Generator struct {
	cfg        *config.Config
	aggregator *Aggregator
	logger     *log.Logger
	now        func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock replaces time.Now, which sets the contribution window and the table timestamp.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg *config.Config, aggregator *Aggregator, logger *log.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{
		cfg:        cfg,
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Report lists what a run produced.
type Report struct {
	Artifacts     []string
	Readme        string
	ReadmeChanged bool
}

// Run generates every artifact and splices the README. The README and its
// markers are checked before any request is made.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	readme, err := g.checkReadme()
	if err != nil {
		return nil, fmt.Errorf("check README: %w", err)
	}
	report := &Report{Readme: readme}
	now := g.now()

	g.logger.Info("Generating profile assets", "login", g.cfg.Username, "days", g.cfg.PeriodDays)

	contributions, err := g.aggregator.Contributions(ctx, g.cfg.Username, g.cfg.Window(), g.cfg.TopRepositories, now)
	if err != nil {
		return nil, err
	}
	commits := card.CommitsCard(card.CommitsData{
		Login:         g.cfg.Username,
		PeriodLabel:   g.cfg.PeriodLabel,
		Contributions: contributions.Top,
		Total:         contributions.Summary.Total,
	})
	if err := g.write(report, CommitsFile, commits.Render()); err != nil {
		return nil, err
	}

	profile, err := g.aggregator.Profile(ctx, g.cfg.Username)
	if err != nil {
		return nil, err
	}
	repos, err := g.aggregator.Repositories(ctx, g.cfg.Username)
	if err != nil {
		return nil, err
	}
	shown := repos.Overview
	if g.cfg.OverviewRows > 0 && len(shown) > g.cfg.OverviewRows {
		shown = shown[:g.cfg.OverviewRows]
	}
	overview := card.OverviewCard(card.OverviewData{
		Login:        g.cfg.Username,
		Name:         profile.DisplayName(),
		Repositories: shown,
		Count:        repos.Summary.Count,
		Total:        repos.Summary.Total,
		Median:       repos.Summary.Median,
	})
	if err := g.write(report, OverviewFile, overview.Render()); err != nil {
		return nil, err
	}

	table := markdown.Table(g.cfg.Username, repos.All, now)
	if err := g.write(report, RepositoriesFile, []byte(table)); err != nil {
		return nil, err
	}

	if links, ok := card.LinksCard(card.LinksData{
		Title:    g.cfg.LinksTitle,
		Subtitle: g.cfg.LinksSubtitle,
		Links:    g.cfg.Links,
	}); ok {
		if err := g.write(report, LinksFile, links.Render()); err != nil {
			return nil, err
		}
	}

	block := markdown.ReadmeBlock(repos.All, g.cfg.ReadmeCards)
	changed, err := splice.File(readme, g.cfg.Markers.Start, g.cfg.Markers.End, block)
	if err != nil {
		return nil, fmt.Errorf("update README: %w", err)
	}
	report.ReadmeChanged = changed
	g.logger.Info("README updated", "path", readme, "changed", changed)

	return report, nil
}

// checkReadme resolves the README path and verifies its markers.
func (g *Generator) checkReadme() (string, error) {
	path, err := splice.FindDocument(g.cfg.Readme, readmeCandidates...)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if _, err := splice.Splice(string(data), g.cfg.Markers.Start, g.cfg.Markers.End, ""); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}

// write stores one artifact in the output directory, replacing any previous version.
func (g *Generator) write(report *Report, name string, data []byte) error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	path := filepath.Join(g.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	g.logger.Info("Wrote artifact", "path", path, "bytes", len(data))
	report.Artifacts = append(report.Artifacts, path)
	return nil
}
