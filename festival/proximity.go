package festival

import (
	"strings"
	"time"
)

// Nearest is the catalog event closest ahead of a reference date.
type Nearest struct {
	Festival   Record `json:"festival"`
	MonthsAway int    `json:"months_away"`
	IsImminent bool   `json:"is_imminent"`
}

// A festival in the current month is considered over once the reference
// day-of-month passes this threshold.
const monthPassedDay = 20

var monthIndexes = map[string]int{
	"jan": 0, "feb": 1, "mar": 2, "apr": 3, "may": 4, "jun": 5,
	"jul": 6, "aug": 7, "sep": 8, "oct": 9, "nov": 10, "dec": 11,
}

// MonthIndex maps a catalog month value to a 0-based calendar month.
// Accepts a 3-letter abbreviation ("Oct") or a hyphenated range
// ("Oct-Nov"), in which case the start month is used.
func MonthIndex(month string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(month))
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}
	if len(s) > 3 {
		s = s[:3]
	}
	idx, ok := monthIndexes[s]
	return idx, ok
}

// FindNearest returns the catalog event with the smallest forward month
// distance from ref, wrapping across the year boundary. When two records
// are equally near, the first one in catalog order wins. A festival in the
// reference month whose day-of-month threshold has passed rolls to next
// year. Returns nil for an empty catalog.
func FindNearest(catalog []Record, ref time.Time) *Nearest {
	current := int(ref.Month()) - 1

	var best *Nearest
	for _, rec := range catalog {
		fm, ok := MonthIndex(rec.Month)
		if !ok {
			continue
		}

		var distance int
		if fm >= current {
			distance = fm - current
		} else {
			distance = (12 - current) + fm
		}
		if distance == 0 && ref.Day() > monthPassedDay {
			distance += 12
		}

		if best == nil || distance < best.MonthsAway {
			best = &Nearest{
				Festival:   rec,
				MonthsAway: distance,
				IsImminent: distance <= 1,
			}
		}
	}

	return best
}
