package cmd

import (
	"fmt"

	"github.com/naka-gawa/github-profile-assets/internal/gateway"
	"github.com/naka-gawa/github-profile-assets/internal/usecase"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the profile cards and updates the README",
	Long: `Fetches commit contributions and owned repositories, writes repo-commits.svg,
repo-overview.svg, repositories.md (and links-card.svg when links are configured) to the
output directory, and replaces the README region between the configured markers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			cfg.OutputDir = out
		}
		if readme, _ := cmd.Flags().GetString("readme"); readme != "" {
			cfg.Readme = readme
		}
		// Configuration problems are reported before any request is made.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger)
		generator := usecase.NewGenerator(cfg, aggregator, logger)

		report, err := generator.Run(cmd.Context())
		if err != nil {
			return err
		}
		for _, path := range report.Artifacts {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		if report.ReadmeChanged {
			fmt.Fprintln(cmd.OutOrStdout(), report.Readme)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "Output directory for generated files (default from config, \"generated\")")
	generateCmd.Flags().String("readme", "", "Profile README to update (default README.md or Readme.md)")
}
