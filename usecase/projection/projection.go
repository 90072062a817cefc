// Package projection derives read-only views from an event list.
//
// Every function is pure: inputs are never modified and results never
// alias the input slice. "Today" is always passed in explicitly.
package projection

import (
	"slices"
	"strings"
	"time"

	"github.com/fastygo/schedule/domain"
)

const (
	// UpcomingLimit caps the upcoming list.
	UpcomingLimit = 5
	// MaxDayMarkers caps the category markers shown per calendar day.
	MaxDayMarkers = 3
	// DueSoonDays is the look-ahead window of the due-soon badge, inclusive.
	DueSoonDays = 3
)

// ActiveCounts counts incomplete events per category. Every known category is
// present in the result; events with unknown categories are ignored.
func ActiveCounts(events []domain.Event) map[domain.Category]int {
	counts := make(map[domain.Category]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		counts[c] = 0
	}
	for _, e := range events {
		if e.Completed {
			continue
		}
		if _, known := counts[e.Category]; known {
			counts[e.Category]++
		}
	}
	return counts
}

// ImportantPending returns important, incomplete events ordered by date.
func ImportantPending(events []domain.Event) []domain.Event {
	return sortByDate(filter(events, func(e domain.Event) bool {
		return e.IsImportant && !e.Completed
	}))
}

// Upcoming returns at most UpcomingLimit incomplete, non-important events
// dated today or later, ordered by date.
func Upcoming(events []domain.Event, today time.Time) []domain.Event {
	day := domain.DateOf(today)
	out := sortByDate(filter(events, func(e domain.Event) bool {
		return e.Date >= day && !e.Completed && !e.IsImportant
	}))
	if len(out) > UpcomingLimit {
		out = out[:UpcomingLimit]
	}
	return out
}

// DayBucket returns the events dated exactly date, in list order.
func DayBucket(events []domain.Event, date string) []domain.Event {
	return filter(events, func(e domain.Event) bool {
		return e.Date == date
	})
}

// CategoryList returns the events of one category, or every event for
// domain.CategoryAll, ordered by date.
func CategoryList(events []domain.Event, categoryOrAll string) []domain.Event {
	if categoryOrAll == domain.CategoryAll {
		return sortByDate(filter(events, func(domain.Event) bool { return true }))
	}
	return sortByDate(filter(events, func(e domain.Event) bool {
		return string(e.Category) == categoryOrAll
	}))
}

// DueSoon reports whether an incomplete assignment falls due between today
// and DueSoonDays calendar days from now.
func DueSoon(e domain.Event, today time.Time) bool {
	if e.Category != domain.CategoryAssignment || e.Completed {
		return false
	}
	days, err := domain.DaysBetween(domain.DateOf(today), e.Date)
	if err != nil {
		return false
	}
	return days >= 0 && days <= DueSoonDays
}

func filter(events []domain.Event, keep func(domain.Event) bool) []domain.Event {
	out := make([]domain.Event, 0)
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// sortByDate sorts in place; ties keep their relative order.
func sortByDate(events []domain.Event) []domain.Event {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		return strings.Compare(a.Date, b.Date)
	})
	return events
}
