package domain

import "time"

// Post is a blog entry. Author is the creating user's id and never changes.
// Likes only ever increment; Comments is append-only and ordered oldest
// first.
type Post struct {
	ID        string
	Title     string
	Content   string
	Author    string
	Likes     int64
	Comments  []Comment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is a single entry in a post's comment list. The id is a ULID, so
// comment order is stable even when two comments land in the same
// millisecond.
type Comment struct {
	ID        string
	Text      string
	CreatedAt time.Time
}
