// Package config reads the optional TOML file of the nform CLI.
//
// A file looks like
//
//	lenient = false
//	verify = true
//	jobs = 4
//	color = "auto"
//
//	[log]
//	level = "debug"
//	sections = ["pipeline", "frontend.distribute"]
//
// Flags given on the command line take precedence over the file.
package config

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Color decides whether CLI output is colored
type Color string

const (
	ColorAuto Color = "auto"
	ColorOn   Color = "on"
	ColorOff  Color = "off"
)

func ParseColor(s string) (Color, error) {
	switch c := Color(strings.ToLower(strings.TrimSpace(s))); c {
	case ColorAuto, ColorOn, ColorOff:
		return c, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q, expected auto, on or off", s)
	}
}

type Config struct {
	Lenient bool  `toml:"lenient"`
	Verify  bool  `toml:"verify"`
	Jobs    int   `toml:"jobs"`
	Color   Color `toml:"color"`
	Log     Log   `toml:"log"`
}

type Log struct {
	Level    string   `toml:"level"`
	Sections []string `toml:"sections"`
}

// Default is the configuration used when no file is given
func Default() Config {
	return Config{
		Jobs:  runtime.GOMAXPROCS(0),
		Color: ColorAuto,
		Log: Log{
			Level:    "warn",
			Sections: []string{"lexer", "parser", "pipeline"},
		},
	}
}

// Load decodes the file at path over Default. Keys the file does
// not set keep their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	color, err := ParseColor(string(c.Color))
	if err != nil {
		return err
	}
	c.Color = color
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level as one of debug, info, warn or error
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
