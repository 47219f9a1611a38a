// Package model defines the core relationship data types.
package model

import "time"

// CardStatus is the lifecycle state of an important date.
type CardStatus string

const (
	StatusPlanned CardStatus = "PLANNED"
	StatusOrdered CardStatus = "ORDERED"
	StatusSent    CardStatus = "SENT"
	StatusDeleted CardStatus = "DELETED"
)

// Preference is a single remembered nuance about a person.
type Preference struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Content  string `json:"content"`
	// Timestamp is creation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// ImportantDate is an occasion tied to a person.
// Date is an ISO calendar date (YYYY-MM-DD).
type ImportantDate struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Date      string     `json:"date"`
	Recurring bool       `json:"recurring"`
	Status    CardStatus `json:"status"`
	LeadDays  int        `json:"leadDays"`
	Notes     string     `json:"notes,omitempty"`
}

// ProductRecommendation is a gift suggestion from the assistant.
// It is never persisted.
type ProductRecommendation struct {
	Name   string `json:"name"`
	Price  string `json:"price,omitempty"`
	URL    string `json:"url,omitempty"`
	Reason string `json:"reason"`
}

// Person is a profile in the circle. The collection owning it is the
// single source of truth; preferences and dates are replaced wholesale,
// never mutated in place.
type Person struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Nickname     string          `json:"nickname,omitempty"`
	Relationship string          `json:"relationship"`
	Avatar       string          `json:"avatar,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	Address      string          `json:"address,omitempty"`
	Pinned       bool            `json:"pinned"`
	Preferences  []Preference    `json:"preferences"`
	Dates        []ImportantDate `json:"dates"`
	Notes        string          `json:"notes"`
	// LastInteraction is Unix milliseconds, zero when never recorded.
	LastInteraction int64 `json:"lastInteraction,omitempty"`
}

// ValidCategories are the allowed preference categories.
var ValidCategories = map[string]bool{
	"like":    true,
	"dislike": true,
	"fact":    true,
	"ritual":  true,
}

// ValidStatuses are the allowed date card statuses.
var ValidStatuses = map[CardStatus]bool{
	StatusPlanned: true,
	StatusOrdered: true,
	StatusSent:    true,
	StatusDeleted: true,
}

// ValidThemes are the allowed UI theme names.
var ValidThemes = map[string]bool{
	"earthy": true,
	"pastel": true,
	"dark":   true,
	"bay":    true,
}

// DefaultTheme is used when no theme has been stored.
const DefaultTheme = "bay"

// DateLayout is the ISO calendar date layout used throughout.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Millis converts a time to Unix milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
