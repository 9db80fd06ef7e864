package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

const ReportHeader = "Average metrics:"

// FormatMean prints a float the way the original python tool did:
// integral values keep ".0", large and tiny ones switch to exponent form.
func FormatMean(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func Report(w io.Writer, averages []Average) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, ReportHeader)
	for _, a := range averages {
		fmt.Fprintf(out, "%s: %s\n", a.Key, FormatMean(a.Mean))
	}
	if err := out.Flush(); err != nil {
		return xerrors.Errorf("report: %w", err)
	}
	return nil
}
