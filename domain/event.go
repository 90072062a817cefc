package domain

import (
	"strings"
	"time"
)

// Category classifies an event. The set of categories is closed.
type Category string

const (
	CategoryAssignment Category = "assignment"
	CategoryAttendance Category = "attendance"
	CategoryPartTime   Category = "parttime"
	CategoryEvent      Category = "event"
	CategoryOther      Category = "other"
)

// CategoryAll selects every event when listing by category.
const CategoryAll = "all"

var categories = []Category{
	CategoryAssignment,
	CategoryAttendance,
	CategoryPartTime,
	CategoryEvent,
	CategoryOther,
}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event represents a single scheduled item. Only Completed changes after creation.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Date        string   `json:"date"`
	Memo        string   `json:"memo"`
	IsImportant bool     `json:"isImportant"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"createdAt"`
}

// NewEventInput carries the user supplied fields of an event.
type NewEventInput struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Date        string   `json:"date"`
	Memo        string   `json:"memo"`
	IsImportant bool     `json:"isImportant"`
}

// Validate rejects input that would violate the event invariants.
func (in NewEventInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewError(ErrCodeInvalid, "event title is required")
	}
	if !in.Category.Valid() {
		return NewError(ErrCodeInvalid, "unknown category "+string(in.Category))
	}
	if _, err := ParseDate(in.Date); err != nil {
		return WrapError(ErrCodeInvalid, "invalid event date", err)
	}
	return nil
}

// Build materializes the input into an event with the given id and creation time.
func (in NewEventInput) Build(id string, createdAt time.Time) Event {
	return Event{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Date:        in.Date,
		Memo:        in.Memo,
		IsImportant: in.IsImportant,
		Completed:   false,
		CreatedAt:   FormatTimestamp(createdAt),
	}
}
