package model

import "time"

const (
	// DefaultTimelineLimit caps how many posts a timeline fetch returns.
	DefaultTimelineLimit = 1000
	MaxContentLength     = 50
)

// Post is a single timeline message. Username is copied from the author at
// insert time. ID grows strictly with insertion order and doubles as the
// polling cursor.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
