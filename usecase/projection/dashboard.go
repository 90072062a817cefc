package projection

import (
	"time"

	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/usecase/navigation"
)

// Item is an event annotated for display.
type Item struct {
	domain.Event
	DueSoon bool `json:"dueSoon"`
}

// Annotate wraps events with their due-soon flag.
func Annotate(events []domain.Event, today time.Time) []Item {
	items := make([]Item, 0, len(events))
	for _, e := range events {
		items = append(items, Item{Event: e, DueSoon: DueSoon(e, today)})
	}
	return items
}

// Dashboard bundles every projection the presentation layer renders.
// SelectedDay and Category are set only when the selection names them.
type Dashboard struct {
	Today       string                  `json:"today"`
	Counts      map[domain.Category]int `json:"counts"`
	Important   []Item                  `json:"important"`
	Upcoming    []Item                  `json:"upcoming"`
	Calendar    Month                   `json:"calendar"`
	SelectedDay []Item                  `json:"selectedDay,omitempty"`
	Category    []Item                  `json:"category,omitempty"`
	Selection   navigation.State        `json:"selection"`
}

// BuildDashboard recomputes all projections for the given selection.
func BuildDashboard(events []domain.Event, today time.Time, sel navigation.State) Dashboard {
	d := Dashboard{
		Today:     domain.DateOf(today),
		Counts:    ActiveCounts(events),
		Important: Annotate(ImportantPending(events), today),
		Upcoming:  Annotate(Upcoming(events, today), today),
		Calendar:  MonthGrid(events, sel.CurrentMonth.Year, sel.CurrentMonth.Month).MarkToday(today),
		Selection: sel,
	}
	if sel.SelectedDate != "" {
		d.SelectedDay = Annotate(DayBucket(events, sel.SelectedDate), today)
	}
	if sel.CurrentCategory != "" {
		d.Category = Annotate(CategoryList(events, sel.CurrentCategory), today)
	}
	return d
}
