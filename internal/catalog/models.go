package catalog

import (
	"time"

	"github.com/google/uuid"

	"filmvault/internal/tmdb"
)

// Collection groups owned discs under a user-chosen name.
type Collection struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Item is one owned disc in a collection.
type Item struct {
	ID           string
	CollectionID string
	TMDBID       int64
	Title        string
	MediaType    string
	Year         string
	PosterPath   string
	Formats      []string
	Quantity     int
	Watched      bool
	Rating       int
	AddedAt      time.Time
	UpdatedAt    time.Time
}

// NewItem builds a catalog item from a confirmed search result. Formats
// defaults to DVD when the user did not pick one; quantity starts at one.
func NewItem(collectionID string, result tmdb.Result, formats []string) Item {
	if len(formats) == 0 {
		formats = []string{"DVD"}
	}
	return Item{
		ID:           uuid.NewString(),
		CollectionID: collectionID,
		TMDBID:       result.ID,
		Title:        result.DisplayTitle(),
		MediaType:    result.MediaType,
		Year:         result.Year(),
		PosterPath:   result.PosterPath,
		Formats:      formats,
		Quantity:     1,
	}
}
