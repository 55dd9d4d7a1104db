package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"audioproxy/internal/config"
	"audioproxy/internal/resolution"
	"audioproxy/internal/services"
)

// NewRootCommand builds the trackctl command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "Resolve song metadata from Genius",
		Long:          "trackctl looks up Genius song metadata for audio filenames, artist/track pairs and song IDs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initializeColors()
		},
	}

	root.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")

	root.AddCommand(NewResolveCommand())
	root.AddCommand(NewSearchCommand())
	root.AddCommand(NewSamplesCommand())

	return root
}

// initService loads configuration and wires the resolution pipeline. Logs go
// to stderr so stdout stays clean for results.
func initService(cmd *cobra.Command) (*resolution.TrackResolutionService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg, debug)})))

	return resolution.NewTrackResolutionService(services.NewGeniusService(cfg.Genius())), nil
}

// logLevel follows LOG_LEVEL like the server does; --debug overrides it
func logLevel(cfg *config.Config, debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return cfg.SlogLevel()
}
