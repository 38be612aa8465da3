// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-profile-assets/internal/config"
	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// ErrFetch marks transport failures, non-success responses and GraphQL error lists.
var ErrFetch = errors.New("github request failed")

// maxRepositories is the server-side cap of commitContributionsByRepository.
const maxRepositories = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchContributions(ctx context.Context, login string, from, to time.Time) ([]domain.Contribution, error)
	FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error)
	FetchProfile(ctx context.Context, login string) (*domain.Profile, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// contributionsQuery asks for commit contributions grouped by repository.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			CommitContributionsByRepository []struct {
				Repository struct {
					NameWithOwner string
					URL           string
				}
				Contributions struct {
					TotalCount int
				}
			} `graphql:"commitContributionsByRepository(maxRepositories: 100)"`
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// repositoryNode mirrors the fields requested for each owned repository.
// Nullable objects decode to their zero value.
type repositoryNode struct {
	NameWithOwner   string
	URL             string
	StargazerCount  int
	PushedAt        string
	PrimaryLanguage struct {
		Name string
	}
	DefaultBranchRef struct {
		Target struct {
			Commit struct {
				History struct {
					TotalCount int
				}
			} `graphql:"... on Commit"`
		}
	}
}

// repositoriesQuery pages through public repositories, most recently pushed first.
type repositoriesQuery struct {
	User struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []repositoryNode
		} `graphql:"repositories(first: 100, after: $cursor, ownerAffiliations: OWNER, privacy: PUBLIC, orderBy: {field: PUSHED_AT, direction: DESC})"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// Every request carries cfg.Token as a bearer credential and is bounded by cfg.RequestTimeout.
func NewGitHubGateway(cfg *config.Config, logger *log.Logger) (Fetcher, error) {
	// A zero ceiling returns secondary rate limit responses as errors instead of sleeping.
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(cfg.RateLimitWait, func(*github_ratelimit.CallbackContext) {
			logger.Warn("Secondary rate limit wait exceeds the configured ceiling", "ceiling", cfg.RateLimitWait)
		}))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}

	restClient := github.NewClient(httpClient)
	if cfg.APIURL != "" {
		baseURL, err := url.Parse(withTrailingSlash(cfg.APIURL))
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", cfg.APIURL, err)
		}
		restClient.BaseURL = baseURL
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: githubv4.NewEnterpriseClient(cfg.GraphQLURL, httpClient),
		logger:        logger,
	}, nil
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// FetchContributions returns the repositories the user committed to between from and to.
// Repositories with no counted commits are dropped; the order is the server's.
func (g *GitHubGateway) FetchContributions(ctx context.Context, login string, from, to time.Time) ([]domain.Contribution, error) {
	g.logger.Info("Fetching commit contributions...", "login", login, "from", from.Format(time.DateOnly), "to", to.Format(time.DateOnly))
	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"from":  githubv4.DateTime{Time: from},
		"to":    githubv4.DateTime{Time: to},
	}
	var q contributionsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("%w: contributions query: %w", ErrFetch, err)
	}

	items := q.User.ContributionsCollection.CommitContributionsByRepository
	contributions := make([]domain.Contribution, 0, len(items))
	for _, item := range items {
		if item.Contributions.TotalCount <= 0 {
			continue
		}
		contributions = append(contributions, domain.Contribution{
			NameWithOwner: item.Repository.NameWithOwner,
			URL:           item.Repository.URL,
			Commits:       item.Contributions.TotalCount,
		})
	}
	if len(items) == maxRepositories {
		g.logger.Warn("Contribution list hit the server cap; older repositories are not counted", "cap", maxRepositories)
	}
	g.logger.Debug("Completed fetching commit contributions.", "repositories", len(contributions))
	return contributions, nil
}

// FetchRepositories returns every public repository the user owns, following
// the cursor until GitHub reports no further page. Nothing is returned on error.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	g.logger.Info("Fetching owned repositories...", "login", login)
	variables := map[string]interface{}{
		"login":  githubv4.String(login),
		"cursor": (*githubv4.String)(nil),
	}

	var repos []domain.Repository
	for page := 1; ; page++ {
		var q repositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("%w: repositories page %d: %w", ErrFetch, page, err)
		}
		for _, node := range q.User.Repositories.Nodes {
			repos = append(repos, node.toDomain())
		}
		if !q.User.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.User.Repositories.PageInfo.EndCursor)
		g.logger.Debug("  Fetching next page of repositories...", "page", page+1)
	}
	g.logger.Debug("Completed fetching repositories.", "repositories", len(repos))
	return repos, nil
}

func (n repositoryNode) toDomain() domain.Repository {
	return domain.Repository{
		NameWithOwner: n.NameWithOwner,
		URL:           n.URL,
		Stars:         max(n.StargazerCount, 0),
		PushedAt:      n.PushedAt,
		Language:      n.PrimaryLanguage.Name,
		Commits:       max(n.DefaultBranchRef.Target.Commit.History.TotalCount, 0),
	}
}

// FetchProfile returns the public profile header of the user via the REST API.
func (g *GitHubGateway) FetchProfile(ctx context.Context, login string) (*domain.Profile, error) {
	g.logger.Info("Fetching user profile...", "login", login)
	user, _, err := g.restClient.Users.Get(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("%w: user profile: %w", ErrFetch, err)
	}
	profile := &domain.Profile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		Followers:   user.GetFollowers(),
		PublicRepos: user.GetPublicRepos(),
	}
	if profile.Login == "" {
		profile.Login = login
	}
	return profile, nil
}
