package cmd

import (
	"fmt"
	"io"

	"github.com/cottand/nform/frontend/nferr"
	"github.com/cottand/nform/internal/config"
	"github.com/cottand/nform/internal/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	colorMode  string
	debugErrs  bool
)

// settings is the configuration after Setup merged the config file and
// the persistent flags
var settings = config.Default()

var (
	labelColor   = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// AddPersistentFlags registers the flags shared by every subcommand on root
func AddPersistentFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML configuration file")
	flags.StringVarP(&logLevel, "log-level", "l", "", "log level (debug|info|warn|error)")
	flags.StringVar(&colorMode, "color", "", "colorize output (auto|on|off)")
	flags.BoolVar(&debugErrs, "debug-errors", false, "print where diagnostics were raised")
	_ = flags.MarkHidden("debug-errors")
}

// Setup loads the config file, if any, and applies the persistent flags
// over it. It is meant as the PersistentPreRunE of the root command.
func Setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("could not load configuration: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = config.Color(colorMode)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.EnableSections(cfg.Log.Sections...)
	nferr.SetDebugPrinting(debugErrs)
	applyColor(cfg.Color)

	settings = cfg
	return nil
}

func applyColor(mode config.Color) {
	switch mode {
	case config.ColorOn:
		color.NoColor = false
	case config.ColorOff:
		color.NoColor = true
	}
}

// PrintError writes err to w in red
func PrintError(w io.Writer, err error) {
	_, _ = errorColor.Fprintln(w, "error:", err)
}

func printLabelled(w io.Writer, label string, value string) {
	_, _ = labelColor.Fprint(w, label+":")
	_, _ = fmt.Fprintln(w, " "+value)
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		_, _ = warningColor.Fprintln(w, "warning: "+warning)
	}
}
