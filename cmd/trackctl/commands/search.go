package commands

import (
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the artist/track search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the Genius song URL for an artist and track name",
		Args:  cobra.NoArgs,
		RunE:  runSearchCommand,
	}

	cmd.Flags().String("artist", "", "Artist name")
	cmd.Flags().String("track", "", "Track name")
	_ = cmd.MarkFlagRequired("artist")
	_ = cmd.MarkFlagRequired("track")

	return cmd
}

func runSearchCommand(cmd *cobra.Command, args []string) error {
	service, err := initService(cmd)
	if err != nil {
		colorError.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return err
	}

	artist, _ := cmd.Flags().GetString("artist")
	track, _ := cmd.Flags().GetString("track")

	match, err := service.SearchByArtistAndTrack(cmd.Context(), artist, track)
	if err != nil {
		colorError.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return err
	}

	out := cmd.OutOrStdout()
	if !match.Found() {
		colorWarning.Fprintf(out, "No hit matched %s - %s\n", artist, track)
		return nil
	}

	printField(out, "Song URL", match.URL)
	printField(out, "Song ID", match.SongID)
	printField(out, "Match", match.Kind.String())
	return nil
}
