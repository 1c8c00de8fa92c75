package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeFilter names a relative window over which entries are shown and counted.
type TimeFilter string

const (
	FilterAll         TimeFilter = "all"
	FilterWeek        TimeFilter = "week"
	FilterMonth       TimeFilter = "month"
	FilterThreeMonths TimeFilter = "3m"
	FilterSixMonths   TimeFilter = "6m"
)

// TimeFilters lists all filters in cycling order, widest last.
var TimeFilters = []TimeFilter{
	FilterAll, FilterWeek, FilterMonth, FilterThreeMonths, FilterSixMonths,
}

// Label returns the display name for the filter.
func (f TimeFilter) Label() string {
	switch f {
	case FilterAll:
		return "All Time"
	case FilterWeek:
		return "Past Week"
	case FilterMonth:
		return "Past Month"
	case FilterThreeMonths:
		return "Past 3 Months"
	case FilterSixMonths:
		return "Past 6 Months"
	default:
		return string(f)
	}
}

// Cutoff returns the inclusive lower bound for the window ending at now.
// ok is false for FilterAll, which admits every entry.
func (f TimeFilter) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch f {
	case FilterWeek:
		return now.AddDate(0, 0, -7), true
	case FilterMonth:
		return now.AddDate(0, -1, 0), true
	case FilterThreeMonths:
		return now.AddDate(0, -3, 0), true
	case FilterSixMonths:
		return now.AddDate(0, -6, 0), true
	}
	return time.Time{}, false
}

// Next returns the filter after f in cycling order, wrapping around.
func (f TimeFilter) Next() TimeFilter {
	for i, tf := range TimeFilters {
		if tf == f {
			return TimeFilters[(i+1)%len(TimeFilters)]
		}
	}
	return FilterAll
}

// ParseTimeFilter resolves a filter from its flag value.
func ParseTimeFilter(s string) (TimeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "week", "w":
		return FilterWeek, nil
	case "month", "m":
		return FilterMonth, nil
	case "3m", "quarter":
		return FilterThreeMonths, nil
	case "6m", "half":
		return FilterSixMonths, nil
	}
	return "", fmt.Errorf("unknown time filter %q (want all, week, month, 3m or 6m)", s)
}
