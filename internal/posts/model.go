package posts

import "time"

// TimeLayout is the sortable timestamp representation stored and served for
// posts. Lexicographic order matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000Z"

type Post struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"image_url"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// NowUTC returns the current time in TimeLayout. created_at and updated_at
// are set to the same value at creation and never touched again; there is
// no edit operation.
func NowUTC() string {
	return time.Now().UTC().Format(TimeLayout)
}
