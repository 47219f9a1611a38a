package circle

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kokorohq/kokoro/internal/model"
	"github.com/kokorohq/kokoro/internal/store"
)

func newTestCircle(t *testing.T) (*Circle, *store.SQLiteStore) {
	t.Helper()
	dir := t.TempDir()
	s, err := store.NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return Load(context.Background(), s, nil), s
}

func TestCreatePersonDefaults(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	p, err := c.CreatePerson(ctx, CreateParams{Name: "Sarah"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p.ID == "" {
		t.Error("expected non-empty ID")
	}
	if p.Relationship != "Friend" {
		t.Errorf("expected default relationship Friend, got %q", p.Relationship)
	}
	if !strings.Contains(p.Avatar, "seed=Sarah") {
		t.Errorf("expected generated avatar, got %q", p.Avatar)
	}
	if p.Preferences == nil || len(p.Preferences) != 0 {
		t.Errorf("expected empty preference list, got %+v", p.Preferences)
	}
	if p.Dates == nil || len(p.Dates) != 0 {
		t.Errorf("expected empty date list, got %+v", p.Dates)
	}
}

func TestCreatePersonRequiresName(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	if _, err := c.CreatePerson(ctx, CreateParams{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestCreatePersonPrepends(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	c.CreatePerson(ctx, CreateParams{Name: "First"})
	c.CreatePerson(ctx, CreateParams{Name: "Second"})

	people := c.People()
	if people[0].Name != "Second" || people[1].Name != "First" {
		t.Errorf("expected most-recent-first order, got %s then %s", people[0].Name, people[1].Name)
	}
}

func TestCreatePersonPersists(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCircle(t)

	c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	reloaded := Load(ctx, s, nil)
	if len(reloaded.People()) != 1 || reloaded.People()[0].Name != "Sarah" {
		t.Errorf("expected flushed person after create, got %+v", reloaded.People())
	}
}

func TestUpdatePersonIsolation(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah", Notes: "original"})
	ken, _ := c.CreatePerson(ctx, CreateParams{Name: "Ken", Notes: "untouched"})

	notes := "x"
	if err := c.UpdatePerson(ctx, sarah.ID, Patch{Notes: &notes}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := c.Find(sarah.ID)
	if got.Notes != "x" {
		t.Errorf("expected updated notes, got %q", got.Notes)
	}
	if got.Name != "Sarah" || got.Relationship != "Friend" {
		t.Errorf("expected other fields untouched, got %+v", got)
	}

	other := c.Find(ken.ID)
	if other.Notes != "untouched" {
		t.Errorf("expected other person untouched, got %q", other.Notes)
	}
}

func TestUpdatePersonUnknownIDNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	notes := "x"
	if err := c.UpdatePerson(ctx, "nope", Patch{Notes: &notes}); err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}
	if c.People()[0].Notes != "" {
		t.Error("expected collection unchanged")
	}
}

func TestDeletePerson(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah"})
	c.CreatePerson(ctx, CreateParams{Name: "Ken"})

	if err := c.DeletePerson(ctx, sarah.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(c.People()) != 1 || c.People()[0].Name != "Ken" {
		t.Errorf("expected only Ken to remain, got %+v", c.People())
	}

	// Unknown id is a no-op.
	if err := c.DeletePerson(ctx, "nope"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}

	reloaded := Load(ctx, s, nil)
	if len(reloaded.People()) != 1 {
		t.Errorf("expected delete to be flushed, got %d people", len(reloaded.People()))
	}
}

func TestAddDate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	d, err := c.AddDate(ctx, sarah.ID, DateParams{Label: "Birthday", Date: "2024-03-03", Recurring: true, LeadDays: 14})
	if err != nil {
		t.Fatalf("add date: %v", err)
	}
	if d.Status != model.StatusPlanned {
		t.Errorf("expected PLANNED status, got %s", d.Status)
	}
	if d.LeadDays != 14 {
		t.Errorf("expected lead of 14 days, got %d", d.LeadDays)
	}

	// Zero is a valid reminder window, not an unset sentinel.
	zero, err := c.AddDate(ctx, sarah.ID, DateParams{Label: "Same day", Date: "2024-04-04"})
	if err != nil {
		t.Fatalf("add date: %v", err)
	}
	if zero.LeadDays != 0 {
		t.Errorf("expected lead of 0 days to be kept, got %d", zero.LeadDays)
	}

	if _, err := c.AddDate(ctx, sarah.ID, DateParams{Label: "Bad", Date: "03/03/2024"}); err == nil {
		t.Error("expected error for invalid date format")
	}
	if _, err := c.AddDate(ctx, sarah.ID, DateParams{Label: "Bad", Date: "2024-03-03", LeadDays: -1}); err == nil {
		t.Error("expected error for negative lead days")
	}
	if _, err := c.AddDate(ctx, "nope", DateParams{Label: "X", Date: "2024-03-03"}); err == nil {
		t.Error("expected error for unknown person")
	}
}

func TestAddPreference(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	pref, err := c.AddPreference(ctx, sarah.ID, PreferenceParams{Content: "green tea"})
	if err != nil {
		t.Fatalf("add preference: %v", err)
	}
	if pref.Category != "fact" {
		t.Errorf("expected default category fact, got %q", pref.Category)
	}
	if pref.Timestamp == 0 {
		t.Error("expected creation timestamp")
	}

	if _, err := c.AddPreference(ctx, sarah.ID, PreferenceParams{Category: "vibe", Content: "x"}); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := c.AddPreference(ctx, sarah.ID, PreferenceParams{Content: "  "}); err == nil {
		t.Error("expected error for blank content")
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	seen := map[string]bool{sarah.ID: true}
	for i := 0; i < 20; i++ {
		d, err := c.AddDate(ctx, sarah.ID, DateParams{Label: "X", Date: "2024-03-03"})
		if err != nil {
			t.Fatalf("add date: %v", err)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true

		p, err := c.AddPreference(ctx, sarah.ID, PreferenceParams{Content: "c"})
		if err != nil {
			t.Fatalf("add preference: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	c.CreatePerson(ctx, CreateParams{Name: "Sarah", Notes: "loves hiking"})
	ken, _ := c.CreatePerson(ctx, CreateParams{Name: "Ken", Relationship: "Brother"})
	c.AddPreference(ctx, ken.ID, PreferenceParams{Content: "single malt whisky"})

	tests := []struct {
		query string
		want  []string
	}{
		{"sarah", []string{"Sarah"}},
		{"hiking", []string{"Sarah"}},
		{"brother", []string{"Ken"}},
		{"whisky", []string{"Ken"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := c.Search(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q): expected %d hits, got %d", tt.query, len(tt.want), len(got))
			continue
		}
		for i := range got {
			if got[i].Name != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %s, want %s", tt.query, i, got[i].Name, tt.want[i])
			}
		}
	}
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	if c.Find(sarah.ID) == nil {
		t.Error("expected find by id")
	}
	if c.Find("sarah") == nil {
		t.Error("expected case-insensitive find by name")
	}
	if c.Find("nobody") != nil {
		t.Error("expected nil for unknown person")
	}
}
