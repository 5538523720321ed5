package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mgpai22/cueview/internal/caption"
)

var validateCmd = &cobra.Command{
	Use:   "validate [track_file]",
	Short: "Report malformed cues in a caption track",
	Long: `Check every cue of a caption track: start after end, negative span
offsets or lengths, spans running past the cue text and unknown styles.

Malformed cues still render (possibly garbled), so problems are reported but
only fail the command with --strict.

Examples:
  cueview validate captions.json
  cueview validate captions.yaml --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().
		Bool("strict", false, "Exit with an error when any cue is malformed")
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	track, err := loadTrack(args[0])
	if err != nil {
		return err
	}

	problems := multierr.Errors(caption.ValidateAll(track.Cues))
	out := cmd.OutOrStdout()
	for _, p := range problems {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintf(out, "%d cues, %d problems\n", len(track.Cues), len(problems))

	if strict && len(problems) > 0 {
		return fmt.Errorf("caption track has %d problems", len(problems))
	}
	return nil
}
