package tabular

import (
	"strconv"
	"strings"
)

// characters stripped before numeric parsing: currency symbols, thousands
// separators and percent signs as they appear in the sheet exports
var numericReplacer = strings.NewReplacer(
	"¥", "",
	"￥", "",
	"$", "",
	"%", "",
	",", "",
	"，", "",
	" ", "",
	" ", "",
)

// parses a raw cell into a float after stripping currency/percent noise.
// This is the single numeric parsing policy shared by the lenient scorer
// (which coerces failures to a default) and the strict filters (which drop
// rows on failure).
func ParseNumeric(raw string) (float64, bool) {
	cleaned := numericReplacer.Replace(strings.TrimSpace(raw))
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// formats a derived numeric column with one decimal place
func FormatNumeric(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
