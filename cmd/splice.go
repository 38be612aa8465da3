package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/naka-gawa/github-profile-assets/internal/splice"
	"github.com/spf13/cobra"
)

var spliceCmd = &cobra.Command{
	Use:   "splice <document> [content-file]",
	Short: "Replaces the region between the markers of a document",
	Long: `Replaces everything between the start and end markers of <document> with the
contents of [content-file], or standard input when it is omitted. The markers and all text
outside them are kept. The document is not modified when a marker is missing.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		if start, _ := cmd.Flags().GetString("start"); start != "" {
			cfg.Markers.Start = start
		}
		if end, _ := cmd.Flags().GetString("end"); end != "" {
			cfg.Markers.End = end
		}
		if err := cfg.ValidateMarkers(); err != nil {
			return err
		}

		var content []byte
		if len(args) == 2 {
			content, err = os.ReadFile(args[1])
		} else {
			content, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}

		changed, err := splice.File(args[0], cfg.Markers.Start, cfg.Markers.End, string(content))
		if err != nil {
			return err
		}
		logger.Info("Spliced document", "path", args[0], "changed", changed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spliceCmd)
	spliceCmd.Flags().String("start", "", "Start marker (default from config)")
	spliceCmd.Flags().String("end", "", "End marker (default from config)")
}
