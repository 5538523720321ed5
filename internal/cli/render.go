package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgpai22/cueview/internal/overlay"
)

var renderCmd = &cobra.Command{
	Use:   "render [track_file]",
	Short: "Print the caption overlay at one point in time",
	Long: `Render the captions on screen at the given playback time and print the
overlay as HTML: one container per declared position, one caption per cue.

Examples:
  cueview render captions.json --at 1.5s
  cueview render captions.yaml --at 90s --height 720 -l ar`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().
		Duration("at", 0, "Playback time to render (e.g., 1500ms, 2m3s)")
}

func runRender(cmd *cobra.Command, args []string) error {
	at, _ := cmd.Flags().GetDuration("at")
	if at < 0 {
		return fmt.Errorf("playback time cannot be negative: %s", at)
	}

	track, err := loadTrack(args[0])
	if err != nil {
		return err
	}

	clock := &manualClock{now: at, height: cfg.ViewportHeight}
	ov := overlay.New(logger.Zap())

	session, err := newSession(cmd, track, clock, ov)
	if err != nil {
		return err
	}
	if err := session.Start(); err != nil {
		return fmt.Errorf("failed to start captions: %w", err)
	}
	defer session.Close()

	logger.Infow("Rendered captions",
		"time", at.String(),
		"containers", ov.Containers(),
		"captions", ov.Entries(),
	)

	html, err := ov.HTML()
	if err != nil {
		return fmt.Errorf("failed to serialize overlay: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
