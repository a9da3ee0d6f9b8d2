package domain

import "time"

// MaxPostLen is the maximum post body length in runes.
const MaxPostLen = 140

// Post is an immutable short message. Posts are never edited or deleted
// once created.
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
