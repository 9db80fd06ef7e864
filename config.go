package main

import (
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

const DefaultInputFile = "AveragedMetrics"

type Order string

const (
	OrderFirstSeen Order = "first-seen"
	OrderSorted    Order = "sorted"
)

type StripMode string

const (
	// StripAll removes every whitespace character, inside tokens too.
	StripAll  StripMode = "all"
	StripTrim StripMode = "trim"
)

type Config struct {
	Input         string    `yaml:"input"`
	Order         Order     `yaml:"order"`
	Strip         StripMode `yaml:"strip"`
	SkipMalformed bool      `yaml:"skip_malformed"`
	Log           string    `yaml:"log"`
	Verbose       bool      `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Input: DefaultInputFile,
		Order: OrderFirstSeen,
		Strip: StripAll,
		Log:   "stderr",
	}
}

func (c *Config) Validate() error {
	switch c.Order {
	case OrderFirstSeen, OrderSorted:
	default:
		return xerrors.Errorf("unknown order %q", c.Order)
	}
	switch c.Strip {
	case StripAll, StripTrim:
	default:
		return xerrors.Errorf("unknown strip mode %q", c.Strip)
	}
	if c.Input == "" {
		return xerrors.New("empty input path")
	}
	return nil
}

// ReadFile overlays the YAML file on c. Keys absent from the file keep
// their current value.
func (c *Config) ReadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return xerrors.Errorf("open: %w", err)
	}
	defer f.Close()
	contents, err := io.ReadAll(f)
	if err != nil {
		return xerrors.Errorf("read: %w", err)
	}
	if err := yaml.Unmarshal(contents, c); err != nil {
		return xerrors.Errorf("unmarshal: %w", err)
	}
	return nil
}

// ParseConfig builds the config from defaults, the optional --config file
// and the command line, in that order of precedence.
func ParseConfig(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := pflag.NewFlagSet("avgmetrics", pflag.ContinueOnError)
	configFile := fs.StringP("config", "c", "", "Path to YAML config")
	input := fs.StringP("input", "i", cfg.Input, "Path to metrics file")
	order := fs.StringP("order", "o", string(cfg.Order), "Output order: first-seen or sorted")
	strip := fs.String("strip", string(cfg.Strip), "Whitespace handling: all or trim")
	skip := fs.Bool("skip-malformed", cfg.SkipMalformed, "Skip lines with a bad value instead of failing")
	logPath := fs.String("log", cfg.Log, "Log output path")
	verbose := fs.BoolP("verbose", "v", cfg.Verbose, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, xerrors.Errorf("flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, xerrors.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *configFile != "" {
		if err := cfg.ReadFile(*configFile); err != nil {
			return Config{}, xerrors.Errorf("config %s: %w", *configFile, err)
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "order":
			cfg.Order = Order(*order)
		case "strip":
			cfg.Strip = StripMode(*strip)
		case "skip-malformed":
			cfg.SkipMalformed = *skip
		case "log":
			cfg.Log = *logPath
		case "verbose":
			cfg.Verbose = *verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, xerrors.Errorf("config: %w", err)
	}
	return cfg, nil
}
