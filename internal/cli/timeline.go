package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgpai22/cueview/internal/caption"
	"github.com/mgpai22/cueview/internal/player"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [track_file]",
	Short: "Play a caption track against a simulated clock",
	Long: `Advance a simulated playback clock through the track and print every
change of what is on screen: new frames, clears and their containers.

The clock starts at 0 and moves by --step (default from tick_interval in the
config) until --until, or until just past the last cue.

Examples:
  cueview timeline captions.json
  cueview timeline captions.json --step 100ms --until 30s`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().
		Duration("step", 0, "Clock tick interval (overrides config)")
	timelineCmd.Flags().
		Duration("until", 0, "Stop the clock at this time (default: end of track)")
}

// printingSink writes one line per change of the screen.
type printingSink struct {
	out  io.Writer
	now  func() time.Duration
	seen int
}

func (p *printingSink) Render(f player.Frame) {
	p.seen++
	var parts []string
	for _, c := range f.Containers {
		texts := make([]string, 0, len(c.Entries))
		for _, e := range c.Entries {
			texts = append(texts, e.Markup)
		}
		parts = append(parts, fmt.Sprintf("%s{%s}",
			c.Key.String(), strings.Join(texts, " | ")))
	}
	fmt.Fprintf(p.out, "%s  show  %s  %s\n",
		caption.FormatTimestamp(f.Time), f.Direction, strings.Join(parts, " "))
}

func (p *printingSink) Clear() {
	p.seen++
	fmt.Fprintf(p.out, "%s  clear\n", caption.FormatTimestamp(p.now().Milliseconds()))
}

func (p *printingSink) SetDirection(dir caption.Direction) {
	fmt.Fprintf(p.out, "%s  dir   %s\n", caption.FormatTimestamp(p.now().Milliseconds()), dir)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	step, _ := cmd.Flags().GetDuration("step")
	until, _ := cmd.Flags().GetDuration("until")

	if step == 0 {
		step = cfg.TickInterval
	}
	if step < 0 {
		return fmt.Errorf("step must be positive: %s", step)
	}

	track, err := loadTrack(args[0])
	if err != nil {
		return err
	}

	clock := &manualClock{height: cfg.ViewportHeight}
	sink := &printingSink{out: cmd.OutOrStdout(), now: clock.CurrentTime}

	session, err := newSession(cmd, track, clock, sink)
	if err != nil {
		return err
	}

	if until <= 0 {
		last := time.Duration(session.Track().Duration()) * time.Millisecond
		until = last + step
	}

	logger.Infow("Starting timeline",
		"cues", len(track.Cues),
		"step", step.String(),
		"until", until.String(),
	)

	if err := session.Start(); err != nil {
		return fmt.Errorf("failed to start captions: %w", err)
	}
	ticks := tickTimes(step, until)
	for _, at := range ticks {
		clock.now = at
		session.Tick()
	}

	logger.Infow("Timeline finished",
		"ticks", len(ticks),
		"changes", sink.seen,
	)
	return nil
}

// tick times after the initial frame at 0, up to and including until
func tickTimes(step, until time.Duration) []time.Duration {
	var ticks []time.Duration
	for at := step; at <= until; at += step {
		ticks = append(ticks, at)
	}
	return ticks
}
