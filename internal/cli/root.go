package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/mgpai22/cueview/internal/config"
	"github.com/mgpai22/cueview/internal/logging"
)

var (
	verbose    bool
	configPath string
	cfg        = config.Default()
	logger     = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "cueview",
	Short: "Timed caption overlay renderer",
	Long: `Cueview renders timed, styled caption tracks the way a video player
overlay shows them: which cues are on screen at a given time, where their
containers sit and the inline markup of each caption.

Caption tracks are JSON or YAML lists of cues with start/end in milliseconds,
optional BOLD/ITALIC/UNDERLINE spans and a horizontal/vertical position.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := applyFlagOverrides(cmd, loaded); err != nil {
			return err
		}
		cfg = loaded

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		logger = logging.New(level)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Caption language: BCP 47 tag (e.g., ar, en) or ltr/rtl")
	rootCmd.PersistentFlags().
		Float64("height", 0, "Viewport height in pixels (overrides config)")
	rootCmd.PersistentFlags().
		Bool("strict-styles", false, "Render cues with unknown styles as plain text")
}

// flags explicitly set on the command line win over the config file
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("language") {
		c.Language, _ = flags.GetString("language")
	}
	if flags.Changed("height") {
		c.ViewportHeight, _ = flags.GetFloat64("height")
	}
	if flags.Changed("strict-styles") {
		c.StrictStyles, _ = flags.GetBool("strict-styles")
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
