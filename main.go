package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Flow:
// 	AveragedMetrics	-(parse)->	key, value
//	key, value		-(record)->	sum, count per key
//	sum, count		-(divide)->	mean per key	-(print)->	stdout

func main() {
	if err := mainFunc(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg Config) (*zap.Logger, error) {
	logcfg := zap.NewDevelopmentConfig()
	logcfg.OutputPaths = []string{cfg.Log}
	logcfg.ErrorOutputPaths = []string{"stderr"}
	if cfg.Verbose {
		logcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		logcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return logcfg.Build()
}

func mainFunc(args []string) error {
	cfg, err := ParseConfig(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return xerrors.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sl := logger.Sugar()

	averages, st, err := NewAverager(cfg, sl).RunFile(cfg.Input)
	if err != nil {
		return err
	}
	if st.Malformed != nil {
		sl.Warnf("Skipped malformed values: %v", st.Malformed)
	}

	if err := Report(os.Stdout, averages); err != nil {
		return err
	}
	return nil
}
