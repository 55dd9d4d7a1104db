package commands

import (
	"github.com/spf13/cobra"
)

// NewSamplesCommand creates the sample lookup command
func NewSamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "samples [song_id]",
		Short: "List the songs a Genius song samples and is sampled by",
		Args:  cobra.ExactArgs(1),
		RunE:  runSamplesCommand,
	}
}

func runSamplesCommand(cmd *cobra.Command, args []string) error {
	service, err := initService(cmd)
	if err != nil {
		colorError.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return err
	}

	info, err := service.GetSampleInfo(cmd.Context(), args[0])
	if err != nil {
		colorError.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
		return err
	}

	out := cmd.OutOrStdout()
	printField(out, "Samples", orNone(info.Samples))
	printField(out, "Sampled by", orNone(info.SampledBys))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
