// Package circle owns the in-memory person collection and every
// mutation against it. All writes flush the full collection to the
// store before returning.
package circle

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/kokorohq/kokoro/internal/model"
	"github.com/kokorohq/kokoro/internal/store"
)

// Circle is the explicit state container for the person collection.
type Circle struct {
	people  []model.Person
	store   store.Store
	log     *zap.Logger
	entropy *rand.Rand
	now     func() time.Time
}

// Load reads the collection from the store and wraps it in a Circle.
func Load(ctx context.Context, s store.Store, log *zap.Logger) *Circle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Circle{
		people:  s.LoadPeople(ctx),
		store:   s,
		log:     log,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

func (c *Circle) newID() string {
	return ulid.MustNew(ulid.Timestamp(c.now()), c.entropy).String()
}

func (c *Circle) flush(ctx context.Context) error {
	return c.store.SavePeople(ctx, c.people)
}

// People returns the collection in its stored order.
func (c *Circle) People() []model.Person {
	return c.people
}

// Find returns the person whose ID or exact name (case-insensitive)
// matches, or nil.
func (c *Circle) Find(idOrName string) *model.Person {
	lower := strings.ToLower(idOrName)
	for i := range c.people {
		if c.people[i].ID == idOrName || strings.ToLower(c.people[i].Name) == lower {
			return &c.people[i]
		}
	}
	return nil
}

// Search returns people whose name, nickname, relationship, notes or
// preference content contains the query, case-insensitively.
func (c *Circle) Search(query string) []model.Person {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.people
	}
	var hits []model.Person
	for _, p := range c.people {
		if personMatches(p, q) {
			hits = append(hits, p)
		}
	}
	return hits
}

func personMatches(p model.Person, q string) bool {
	for _, field := range []string{p.Name, p.Nickname, p.Relationship, p.Notes} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, pref := range p.Preferences {
		if strings.Contains(strings.ToLower(pref.Content), q) {
			return true
		}
	}
	return false
}

// CreateParams holds fields for a new person.
type CreateParams struct {
	Name         string
	Nickname     string
	Relationship string
	Phone        string
	Email        string
	Address      string
	Notes        string
	Pinned       bool
}

// CreatePerson adds a new person at the front of the collection
// (most-recent-first) and flushes.
func (c *Circle) CreatePerson(ctx context.Context, p CreateParams) (*model.Person, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	relationship := p.Relationship
	if relationship == "" {
		relationship = "Friend"
	}

	person := model.Person{
		ID:           c.newID(),
		Name:         name,
		Nickname:     p.Nickname,
		Relationship: relationship,
		Avatar:       avatarURL(name),
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		Pinned:       p.Pinned,
		Preferences:  []model.Preference{},
		Dates:        []model.ImportantDate{},
		Notes:        p.Notes,
	}

	c.people = append([]model.Person{person}, c.people...)
	if err := c.flush(ctx); err != nil {
		return nil, err
	}
	return &person, nil
}

func avatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}

// Patch is a partial person update. Nil fields are left untouched;
// non-nil list fields replace the whole list.
type Patch struct {
	Name            *string
	Nickname        *string
	Relationship    *string
	Avatar          *string
	Phone           *string
	Email           *string
	Address         *string
	Notes           *string
	Pinned          *bool
	LastInteraction *int64
	Preferences     *[]model.Preference
	Dates           *[]model.ImportantDate
}

// UpdatePerson shallow-merges the patch into the matching person and
// flushes. Unknown ids are a silent no-op.
func (c *Circle) UpdatePerson(ctx context.Context, id string, patch Patch) error {
	for i := range c.people {
		if c.people[i].ID != id {
			continue
		}
		applyPatch(&c.people[i], patch)
		return c.flush(ctx)
	}
	return nil
}

func applyPatch(p *model.Person, patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Nickname != nil {
		p.Nickname = *patch.Nickname
	}
	if patch.Relationship != nil {
		p.Relationship = *patch.Relationship
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.Pinned != nil {
		p.Pinned = *patch.Pinned
	}
	if patch.LastInteraction != nil {
		p.LastInteraction = *patch.LastInteraction
	}
	if patch.Preferences != nil {
		p.Preferences = *patch.Preferences
	}
	if patch.Dates != nil {
		p.Dates = *patch.Dates
	}
}

// DeletePerson removes the person and flushes. Unknown ids are a no-op.
func (c *Circle) DeletePerson(ctx context.Context, id string) error {
	for i := range c.people {
		if c.people[i].ID == id {
			c.people = append(c.people[:i], c.people[i+1:]...)
			return c.flush(ctx)
		}
	}
	return nil
}

// DateParams holds fields for a new important date.
type DateParams struct {
	Label     string
	Date      string
	Recurring bool
	LeadDays  int
	Notes     string
}

// AddDate appends a date to the person's list through UpdatePerson.
func (c *Circle) AddDate(ctx context.Context, personID string, p DateParams) (*model.ImportantDate, error) {
	person := c.byID(personID)
	if person == nil {
		return nil, fmt.Errorf("person not found: %s", personID)
	}
	if _, err := model.ParseDate(p.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", p.Date, err)
	}
	if p.LeadDays < 0 {
		return nil, fmt.Errorf("lead days must not be negative")
	}

	d := model.ImportantDate{
		ID:        c.newID(),
		Label:     p.Label,
		Date:      p.Date,
		Recurring: p.Recurring,
		Status:    model.StatusPlanned,
		LeadDays:  p.LeadDays,
		Notes:     p.Notes,
	}
	dates := append(append([]model.ImportantDate{}, person.Dates...), d)
	if err := c.UpdatePerson(ctx, person.ID, Patch{Dates: &dates}); err != nil {
		return nil, err
	}
	return &d, nil
}

// PreferenceParams holds fields for a new preference.
type PreferenceParams struct {
	Category string
	Content  string
}

// AddPreference appends a preference to the person's list through
// UpdatePerson.
func (c *Circle) AddPreference(ctx context.Context, personID string, p PreferenceParams) (*model.Preference, error) {
	person := c.byID(personID)
	if person == nil {
		return nil, fmt.Errorf("person not found: %s", personID)
	}
	if p.Category == "" {
		p.Category = "fact"
	}
	if !model.ValidCategories[p.Category] {
		return nil, fmt.Errorf("unknown category %q", p.Category)
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	pref := model.Preference{
		ID:        c.newID(),
		Category:  p.Category,
		Content:   p.Content,
		Timestamp: model.Millis(c.now()),
	}
	prefs := append(append([]model.Preference{}, person.Preferences...), pref)
	if err := c.UpdatePerson(ctx, person.ID, Patch{Preferences: &prefs}); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (c *Circle) byID(id string) *model.Person {
	for i := range c.people {
		if c.people[i].ID == id {
			return &c.people[i]
		}
	}
	return nil
}
