package transport

type EventRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Memo        string `json:"memo"`
	IsImportant bool   `json:"isImportant"`
}

type MemoRequest struct {
	Text string `json:"text"`
}

type MonthRequest struct {
	Delta int `json:"delta"`
}

type DayRequest struct {
	Date string `json:"date"`
}

type CategoryRequest struct {
	Category string `json:"category"`
}

type ViewRequest struct {
	View string `json:"view"`
}
