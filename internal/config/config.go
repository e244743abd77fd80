// Package config loads the TOML file the isotree CLI reads its defaults from.
//
//	[input]
//	graph      = "net.graph"
//	weights    = "x.txt"
//	priorities = "q.txt"
//
//	[output]
//	dir = "out"
//
//	[repair]
//	check_connectivity = true
//
//	[render]
//	dot       = true
//	svg       = false
//	name      = "net"
//	threshold = 0.5
//
//	[log]
//	level = "debug"
//
// Every key is optional; unknown keys are an error so typos do not pass
// silently.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the decoded file.
type Config struct {
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Repair Repair `toml:"repair"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

// Input names the files the repair command reads.
type Input struct {
	Graph      string `toml:"graph"`
	Weights    string `toml:"weights"`
	Priorities string `toml:"priorities"`
}

// Output is where results are written.
type Output struct {
	Dir string `toml:"dir"`
}

// Repair mirrors the library options.
type Repair struct {
	CheckConnectivity bool `toml:"check_connectivity"`
}

// Render controls the DOT and SVG drawings.
type Render struct {
	DOT       bool    `toml:"dot"`
	SVG       bool    `toml:"svg"`
	Name      string  `toml:"name"`
	Threshold float64 `toml:"threshold"`
}

// Log sets the CLI log level.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Input: Input{
			Weights:    "x.txt",
			Priorities: "q.txt",
		},
		Output: Output{Dir: "."},
		Render: Render{Name: "G", Threshold: 0.5},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(string(data))
}

// Parse decodes data over Default and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that decode but make no sense.
func (c Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("config: output.dir is empty: %w", ErrInvalid)
	}
	if math.IsNaN(c.Render.Threshold) || math.IsInf(c.Render.Threshold, 0) {
		return fmt.Errorf("config: render.threshold must be finite: %w", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses Log.Level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("config: log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return lvl, nil
}
