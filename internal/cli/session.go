package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgpai22/cueview/internal/caption"
	"github.com/mgpai22/cueview/internal/player"
	"github.com/mgpai22/cueview/internal/trackfile"
)

// manualClock is a host whose playback position is moved by the caller.
type manualClock struct {
	now    time.Duration
	height float64
	ready  bool
}

func (c *manualClock) CurrentTime() time.Duration { return c.now }
func (c *manualClock) ViewportHeight() float64    { return c.height }
func (c *manualClock) Ready()                     { c.ready = true }

func loadTrack(path string) (*trackfile.Track, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("track file not found: %s", path)
	}

	track, err := trackfile.Load(path)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Loaded caption track",
		"path", path,
		"cues", len(track.Cues),
	)
	return track, nil
}

// the --language flag wins, then the track file, then the config file
func resolveLanguage(cmd *cobra.Command, track *trackfile.Track) (caption.Language, error) {
	if track.Language != nil && !cmd.Flags().Changed("language") {
		return *track.Language, nil
	}
	return cfg.CaptionLanguage()
}

func newSession(
	cmd *cobra.Command,
	track *trackfile.Track,
	clock *manualClock,
	sink player.Sink,
) (*player.Session, error) {
	lang, err := resolveLanguage(cmd, track)
	if err != nil {
		return nil, err
	}

	return player.NewSession(clock, sink,
		player.WithLogger(logger.Zap()),
		player.WithCaptions(track.Cues),
		player.WithLanguage(lang),
		player.WithStrictStyles(cfg.StrictStyles),
	), nil
}
