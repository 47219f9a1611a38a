// Package store persists the person collection and theme preference.
package store

import (
	"context"

	"github.com/kokorohq/kokoro/internal/model"
)

// Stats holds snapshot statistics.
type Stats struct {
	DBPath      string `json:"db_path"`
	DBSizeBytes int64  `json:"db_size_bytes"`
	People      int    `json:"people"`
	Pinned      int    `json:"pinned"`
	Dates       int    `json:"dates"`
	Preferences int    `json:"preferences"`
	Theme       string `json:"theme"`
}

// Store is the durable snapshot storage for the circle.
type Store interface {
	// LoadPeople returns the stored collection. A missing, corrupt or
	// non-array snapshot yields an empty collection, never an error.
	LoadPeople(ctx context.Context) []model.Person

	// SavePeople overwrites the stored collection with the given one.
	SavePeople(ctx context.Context, people []model.Person) error

	// LoadTheme returns the stored theme name, or the default when
	// absent or unrecognized.
	LoadTheme(ctx context.Context) string

	// SaveTheme stores the theme name.
	SaveTheme(ctx context.Context, theme string) error

	// Close closes the store.
	Close() error
}
