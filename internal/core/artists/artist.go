package artists

import (
	"time"
)

// Artist is a musical act attached to a geographic area. The directory
// here is deliberately lean: just enough for artists to serve as vote
// and comment targets with a real lifecycle.
type Artist struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Name      string    `json:"name" db:"name"`
	Bio       string    `json:"bio,omitempty" db:"bio"`
	ID        int64     `json:"id" db:"id"`
	AreaID    int64     `json:"area" db:"area_id"`
}

// CreateArtistRequest contains parameters for adding an artist
type CreateArtistRequest struct {
	Name   string `json:"name"`
	Bio    string `json:"bio,omitempty"`
	AreaID int64  `json:"area"`
}
