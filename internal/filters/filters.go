package filters

import (
	"strings"
	"time"

	"codeberg.org/seoradar/server/internal/tabular"
)

// a row predicate over one column. Filters are strict: a row whose column
// cannot be parsed does not match, in contrast with the scorer's coercion to
// defaults. A user-specified threshold must never silently include rows the
// engine could not actually compare.
type Filter interface {
	Match(rec tabular.Record) bool
}

// keeps rows where column <= threshold
func Max(column string, threshold float64) Filter {
	return numericFilter{column, func(v float64) bool { return v <= threshold }}
}

// keeps rows where column >= threshold
func Min(column string, threshold float64) Filter {
	return numericFilter{column, func(v float64) bool { return v >= threshold }}
}

// keeps rows where lo <= column <= hi (closed range)
func Between(column string, lo, hi float64) Filter {
	return numericFilter{column, func(v float64) bool { return v >= lo && v <= hi }}
}

type numericFilter struct {
	column string
	match  func(float64) bool
}

func (f numericFilter) Match(rec tabular.Record) bool {
	v, ok := rec.Num(f.column)
	if !ok {
		return false
	}

	return f.match(v)
}

// date layouts seen across sheet exports
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// keeps rows whose date column is at or before now minus n months
func OlderThanMonths(column string, months int, now time.Time) Filter {
	cutoff := now.AddDate(0, -months, 0)

	return dateFilter{column, cutoff}
}

type dateFilter struct {
	column string
	cutoff time.Time
}

func (f dateFilter) Match(rec tabular.Record) bool {
	raw := rec.Get(f.column)
	if raw == "" {
		return false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return !t.After(f.cutoff)
		}
	}

	// unparseable date: strict policy, row does not match
	return false
}

// returns the rows matching every filter; with no filters the input is
// returned unchanged
func Apply(rows []tabular.Record, fs ...Filter) []tabular.Record {
	if len(fs) == 0 {
		return rows
	}

	out := make([]tabular.Record, 0, len(rows))

rowLoop:
	for _, rec := range rows {
		for _, f := range fs {
			if !f.Match(rec) {
				continue rowLoop
			}
		}

		out = append(out, rec)
	}

	return out
}

// parses a "lo-hi" or "lo,hi" range expression into a Between filter
func ParseBetween(column, expr string) (Filter, bool) {
	if i := strings.Index(expr, ","); i >= 0 {
		return betweenBounds(column, expr[:i], expr[i+1:])
	}

	// dash separated; either bound may itself be negative, so try every
	// interior dash as the separator until both sides parse
	for i := 1; i < len(expr); i++ {
		if expr[i] != '-' {
			continue
		}

		if f, ok := betweenBounds(column, expr[:i], expr[i+1:]); ok {
			return f, ok
		}
	}

	return nil, false
}

func betweenBounds(column, rawLo, rawHi string) (Filter, bool) {
	lo, okLo := tabular.ParseNumeric(rawLo)
	hi, okHi := tabular.ParseNumeric(rawHi)

	if !okLo || !okHi || lo > hi {
		return nil, false
	}

	return Between(column, lo, hi), true
}
