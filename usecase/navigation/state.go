// Package navigation tracks which month, day, category list and view the
// presentation layer is showing. Nothing here is persisted.
package navigation

import "time"

type View string

const (
	ViewHome     View = "home"
	ViewCalendar View = "calendar"
	ViewList     View = "list"
	ViewMemo     View = "memo"
)

// MonthRef identifies a calendar month.
type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) MonthRef {
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

// Add moves the reference by whole months, rolling the year over as needed.
func (m MonthRef) Add(delta int) MonthRef {
	index := m.Year*12 + int(m.Month-1) + delta
	year := index / 12
	offset := index % 12
	if offset < 0 {
		offset += 12
		year--
	}
	return MonthRef{Year: year, Month: time.Month(offset + 1)}
}

type State struct {
	CurrentMonth    MonthRef `json:"currentMonth"`
	SelectedDate    string   `json:"selectedDate,omitempty"`
	CurrentCategory string   `json:"currentCategory,omitempty"`
	ActiveView      View     `json:"activeView"`
}

// NewState starts on the home view showing the month of today.
func NewState(today time.Time) State {
	return State{
		CurrentMonth: MonthOf(today),
		ActiveView:   ViewHome,
	}
}

func (s *State) SetMonth(delta int) {
	s.CurrentMonth = s.CurrentMonth.Add(delta)
}

func (s *State) SelectDay(date string) {
	s.SelectedDate = date
}

func (s *State) ClearDay() {
	s.SelectedDate = ""
}

func (s *State) SetCategory(categoryOrAll string) {
	s.CurrentCategory = categoryOrAll
}

func (s *State) SetView(view View) {
	s.ActiveView = view
}

// ShowCategory opens the list view for a category token or "all".
func (s *State) ShowCategory(categoryOrAll string) {
	s.SetCategory(categoryOrAll)
	s.SetView(ViewList)
}
