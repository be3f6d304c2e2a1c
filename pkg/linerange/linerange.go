// Package linerange parses and evaluates --line-range selections.
package linerange

import (
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/tint/pkg/errors"
)

// LineRange is an inclusive, 1-based range of lines
type LineRange struct {
	Lower int
	Upper int
}

// All selects every line
var All = LineRange{Lower: 1, Upper: math.MaxInt}

// Parse accepts "N:M", "N:", ":M" and "N"
func Parse(s string) (LineRange, error) {
	r := All
	s = strings.TrimSpace(s)
	if s == "" {
		return r, errors.New(errors.ErrParse, "empty line range")
	}

	lower, upper, hasColon := strings.Cut(s, ":")
	if !hasColon {
		n, err := parseLine(s)
		if err != nil {
			return r, err
		}
		return LineRange{Lower: n, Upper: n}, nil
	}
	if strings.Contains(upper, ":") {
		return r, errors.Newf(errors.ErrParse, "invalid line range '%s'", s)
	}

	if lower != "" {
		n, err := parseLine(lower)
		if err != nil {
			return r, err
		}
		r.Lower = n
	}
	if upper != "" {
		n, err := parseLine(upper)
		if err != nil {
			return r, err
		}
		r.Upper = n
	}
	if lower == "" && upper == "" {
		return r, errors.Newf(errors.ErrParse, "invalid line range '%s'", s)
	}
	return r, nil
}

func parseLine(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrParse, "invalid line number '%s'", s)
	}
	if n < 1 {
		return 0, errors.Newf(errors.ErrParse, "line numbers start at 1, got %d", n)
	}
	return n, nil
}

// Contains reports whether line is inside the range
func (r LineRange) Contains(line int) bool {
	return line >= r.Lower && line <= r.Upper
}

// RangeCheck is the position of a line relative to a set of ranges
type RangeCheck int

const (
	InRange RangeCheck = iota
	BeforeOrBetween
	AfterLastRange
)

// LineRanges is a set of ranges; an empty set selects everything
type LineRanges []LineRange

// ParseAll parses every --line-range value
func ParseAll(values []string) (LineRanges, error) {
	ranges := make(LineRanges, 0, len(values))
	for _, v := range values {
		r, err := Parse(v)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Check classifies line against the ranges
func (rs LineRanges) Check(line int) RangeCheck {
	if len(rs) == 0 {
		return InRange
	}
	last := 0
	for _, r := range rs {
		if r.Contains(line) {
			return InRange
		}
		if r.Upper > last {
			last = r.Upper
		}
	}
	if line > last {
		return AfterLastRange
	}
	return BeforeOrBetween
}
