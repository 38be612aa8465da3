package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/naka-gawa/github-profile-assets/internal/gateway"
	"github.com/naka-gawa/github-profile-assets/internal/usecase"
	"github.com/spf13/cobra"
)

// statsOutput is the JSON document printed by the stats command.
type statsOutput struct {
	Profile       *domain.Profile            `json:"profile"`
	Contributions *usecase.ContributionStats `json:"contributions"`
	Repositories  *usecase.RepositoryStats   `json:"repositories"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates GitHub user activity and outputs as JSON",
	Long:  `Fetches and ranks the same data the generate command renders, and prints it in JSON format without writing any file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger, cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		if top, _ := cmd.Flags().GetInt("top"); top > 0 {
			cfg.TopRepositories = top
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		githubGateway, err := gateway.NewGitHubGateway(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger)

		var out statsOutput
		if out.Profile, err = aggregator.Profile(ctx, cfg.Username); err != nil {
			return err
		}
		if out.Contributions, err = aggregator.Contributions(ctx, cfg.Username, cfg.Window(), cfg.TopRepositories, time.Now()); err != nil {
			return err
		}
		if out.Repositories, err = aggregator.Repositories(ctx, cfg.Username); err != nil {
			return err
		}

		// Marshal the results into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}

		// Print the final JSON to standard output.
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int("top", 0, "Number of repositories in the contribution ranking (default from config, 15)")
}
