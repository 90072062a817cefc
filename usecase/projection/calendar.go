package projection

import (
	"time"

	"github.com/fastygo/schedule/domain"
)

// DayCell is one day of a month grid.
type DayCell struct {
	Date       string            `json:"date"`
	Day        int               `json:"day"`
	Categories []domain.Category `json:"categories"`
	Today      bool              `json:"today,omitempty"`
}

// Month is the calendar grid of one month. LeadingBlanks is the number of
// empty cells before the 1st in a Sunday-first week layout.
type Month struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Days          []DayCell  `json:"days"`
}

// MonthGrid builds one cell per day of the month. Each cell lists the
// categories of the first MaxDayMarkers events dated that day, in list
// order; repeated categories are kept.
func MonthGrid(events []domain.Event, year int, month time.Month) Month {
	markers := make(map[string][]domain.Category)
	for _, e := range events {
		if len(markers[e.Date]) < MaxDayMarkers {
			markers[e.Date] = append(markers[e.Date], e.Category)
		}
	}

	days := domain.DaysIn(year, month)
	grid := Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()),
		Days:          make([]DayCell, 0, days),
	}
	for day := 1; day <= days; day++ {
		date := domain.FormatDate(year, month, day)
		cats := markers[date]
		if cats == nil {
			cats = []domain.Category{}
		}
		grid.Days = append(grid.Days, DayCell{Date: date, Day: day, Categories: cats})
	}
	return grid
}

// MarkToday flags the cell matching today, if it belongs to this month.
func (m Month) MarkToday(today time.Time) Month {
	date := domain.DateOf(today)
	days := make([]DayCell, len(m.Days))
	for i, cell := range m.Days {
		cell.Today = cell.Date == date
		days[i] = cell
	}
	m.Days = days
	return m
}
