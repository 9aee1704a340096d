// Package period provides helpers for fiscal-period labels of the form
// used on Uganda income tax returns, e.g. "FY2024" or "FY2024/25".
package period

import (
	"fmt"
	"regexp"
	"strconv"
)

var labelPattern = regexp.MustCompile(`^FY(\d{4})(?:/(\d{2}))?$`)

// Label formats a fiscal-year label for the given start year.
func Label(year int) string {
	return fmt.Sprintf("FY%d", year)
}

// SplitLabel formats a split fiscal-year label, e.g. FY2024/25.
func SplitLabel(year int) string {
	return fmt.Sprintf("FY%d/%02d", year, (year+1)%100)
}

// Parse extracts the start year from a fiscal-period label. It accepts both
// the plain (FY2024) and split (FY2024/25) forms.
func Parse(label string) (int, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, fmt.Errorf("invalid period label %q: expected FYyyyy or FYyyyy/yy", label)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	if m[2] != "" {
		next, _ := strconv.Atoi(m[2])
		if (year+1)%100 != next {
			return 0, fmt.Errorf("invalid period label %q: second year must follow the first", label)
		}
	}
	return year, nil
}

// Matches reports whether a period label is consistent with the given year.
// Free-form labels that do not parse are accepted; only a parseable label
// naming a different year is a mismatch.
func Matches(label string, year int) bool {
	parsed, err := Parse(label)
	if err != nil {
		return true
	}
	return parsed == year
}
