package comments

import (
	"time"
)

// Comment is a user's comment on an artist, optionally a reply to
// another comment on the same artist.
//
// Deletion is soft: the row survives with Deleted=true so replies keep
// a valid parent and the thread renders a placeholder in its position.
// Author and artist are immutable after creation; only the text may
// change.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ReplyTo   *int64    `json:"reply_to,omitempty" db:"reply_to"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"user" db:"author_id"`
	ArtistID  int64     `json:"artist" db:"artist_id"`
	Deleted   bool      `json:"deleted" db:"deleted"`
}

// CreateCommentRequest contains parameters for creating a comment
type CreateCommentRequest struct {
	ReplyTo  *int64 `json:"reply_to,omitempty"`
	Text     string `json:"text"`
	AuthorID int64  `json:"-"`
	ArtistID int64  `json:"artist"`
}
