package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"audioproxy/internal/models"
)

const defaultConcurrency = 4

type filenameResolver interface {
	SearchByFilename(ctx context.Context, filename string) (*models.ResolvedTrack, error)
}

// resolveOutcome is the result for one input file, kept in input order
type resolveOutcome struct {
	Filename string
	Track    *models.ResolvedTrack
	Err      error
}

// NewResolveCommand creates the filename resolution command
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [filename...]",
		Short: "Resolve Genius metadata for one or more audio filenames",
		Long: `Resolve Genius metadata for audio filenames such as "Madvillain - 03 - Accordion.mp3".
Only the base name of each path is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolveCommand,
	}

	cmd.Flags().IntP("concurrency", "c", defaultConcurrency, "Number of files resolved at once")

	return cmd
}

func runResolveCommand(cmd *cobra.Command, args []string) error {
	service, err := initService(cmd)
	if err != nil {
		colorError.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")

	var bar *pb.ProgressBar
	if len(args) > 1 && isTTY() {
		bar = pb.New(len(args))
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
	}

	outcomes := resolveAll(cmd.Context(), service, args, concurrency, func() {
		if bar != nil {
			bar.Increment()
		}
	})

	if bar != nil {
		bar.Finish()
	}

	failed := printOutcomes(cmd.OutOrStdout(), outcomes)
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be resolved", failed, len(outcomes))
	}
	return nil
}

// resolveAll resolves every path with at most concurrency lookups in flight.
// A failed file does not stop the others. done is called after each file.
func resolveAll(ctx context.Context, resolver filenameResolver, paths []string, concurrency int, done func()) []resolveOutcome {
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]resolveOutcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		filename := filepath.Base(path)
		outcomes[i].Filename = filename

		g.Go(func() error {
			defer done()

			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}

			track, err := resolver.SearchByFilename(ctx, filename)
			outcomes[i].Track = track
			outcomes[i].Err = err
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

// printOutcomes writes one block per file and returns how many failed
func printOutcomes(w io.Writer, outcomes []resolveOutcome) int {
	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			colorError.Fprintf(w, "✗ %s\n", outcome.Filename)
			fmt.Fprintf(w, "  %s\n", describeError(outcome.Err))
			continue
		}

		colorSuccess.Fprintf(w, "✓ %s\n", outcome.Filename)
		printField(w, "  Track", outcome.Track.TrackName)
		printField(w, "  Artist", outcome.Track.Artist)
		printField(w, "  Album", outcome.Track.AlbumName)
		if outcome.Track.AlbumTrackNumber != "" {
			printField(w, "  Number", outcome.Track.AlbumTrackNumber)
		}
		printField(w, "  URL", outcome.Track.SongURL)
	}

	summary := colorSuccess
	if failed > 0 {
		summary = colorWarning
	}
	summary.Fprintf(w, "\n%d resolved, %d failed\n", len(outcomes)-failed, failed)

	return failed
}

func describeError(err error) string {
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	return err.Error()
}

func printField(w io.Writer, label, value string) {
	colorLabel.Fprintf(w, "%-12s", label+":")
	colorInfo.Fprintln(w, " "+value)
}
