package main

import (
	"bufio"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

type Stats struct {
	Lines   int
	Records int
	Ignored int
	// Malformed holds every skipped bad value when SkipMalformed is set.
	Malformed error
}

type Averager struct {
	cfg Config
	sl  *zap.SugaredLogger
}

func NewAverager(cfg Config, sl *zap.SugaredLogger) *Averager {
	if sl == nil {
		sl = zap.NewNop().Sugar()
	}
	return &Averager{cfg: cfg, sl: sl}
}

// Run reads every line of r into an accumulator and returns the means.
// Without SkipMalformed the first bad value aborts the run and nothing
// is returned.
func (a *Averager) Run(r io.Reader) ([]Average, Stats, error) {
	var st Stats
	acc := NewAccumulator()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		st.Lines++
		line := scanner.Text()
		key, value, ok, err := ParseLine(line, a.cfg.Strip)
		if err != nil {
			var perr *ParseError
			if xerrors.As(err, &perr) {
				perr.Line = st.Lines
			}
			if !a.cfg.SkipMalformed {
				return nil, st, xerrors.Errorf("parse: %w", err)
			}
			a.sl.Warnf("Skipping malformed line %d: %q", st.Lines, line)
			st.Malformed = multierr.Append(st.Malformed, err)
			continue
		}
		if !ok {
			st.Ignored++
			a.sl.Debugf("Ignoring line %d: %q", st.Lines, line)
			continue
		}
		st.Records++
		acc.Record(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, st, xerrors.Errorf("read: %w", err)
	}

	res := acc.Averages(a.cfg.Order)
	a.sl.Infof("Read %d lines: %d records, %d keys, %d ignored, %d malformed",
		st.Lines, st.Records, len(res), st.Ignored, len(multierr.Errors(st.Malformed)))
	return res, st, nil
}

func (a *Averager) RunFile(name string) ([]Average, Stats, error) {
	f, err := OpenInput(name)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()
	res, st, err := a.Run(f)
	if err != nil {
		return nil, st, xerrors.Errorf("%s: %w", name, err)
	}
	return res, st, nil
}
