package circle

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/kokorohq/kokoro/internal/model"
)

func TestExecuteNoneIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)
	c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	before := append([]model.Person{}, c.People()...)

	if c.Execute(ctx, model.Command{Action: model.ActionNone}) {
		t.Error("expected NONE to apply nothing")
	}
	if !reflect.DeepEqual(c.People(), before) {
		t.Error("expected collection unchanged")
	}
}

func TestExecuteUnknownActionIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	if c.Execute(ctx, model.Command{Action: "DESTROY_EVERYTHING"}) {
		t.Error("expected unrecognized action to apply nothing")
	}
	// UPDATE_PERSON is advertised but not executed.
	if c.Execute(ctx, model.Command{Action: model.ActionUpdatePerson, Data: model.CommandData{Name: "Sarah"}}) {
		t.Error("expected UPDATE_PERSON to apply nothing")
	}
}

func TestExecuteAddPerson(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	applied := c.Execute(ctx, model.Command{
		Action: model.ActionAddPerson,
		Data:   model.CommandData{Name: "Sarah", Phone: "555-1234"},
	})
	if !applied {
		t.Fatal("expected ADD_PERSON to apply")
	}

	p := c.People()[0]
	if p.Name != "Sarah" || p.Phone != "555-1234" {
		t.Errorf("unexpected person %+v", p)
	}
	if p.Relationship != "Friend" {
		t.Errorf("expected default relationship, got %q", p.Relationship)
	}
}

func TestExecuteAddPersonRequiresName(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	if c.Execute(ctx, model.Command{Action: model.ActionAddPerson}) {
		t.Error("expected ADD_PERSON without name to apply nothing")
	}
	if len(c.People()) != 0 {
		t.Error("expected collection unchanged")
	}
}

func TestExecuteAddDateDefaults(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)
	c.CreatePerson(ctx, CreateParams{Name: "Sarah Connor"})

	applied := c.Execute(ctx, model.Command{
		Action: model.ActionAddDate,
		Data:   model.CommandData{Name: "sarah"},
	})
	if !applied {
		t.Fatal("expected ADD_DATE to apply via substring match")
	}

	dates := c.People()[0].Dates
	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d", len(dates))
	}
	d := dates[0]
	if d.Label != "Special Occasion" {
		t.Errorf("expected default label, got %q", d.Label)
	}
	if !d.Recurring {
		t.Error("expected recurring default")
	}
	if d.Status != model.StatusPlanned {
		t.Errorf("expected PLANNED, got %s", d.Status)
	}
	if d.LeadDays != 7 {
		t.Errorf("expected lead of 7 days, got %d", d.LeadDays)
	}
	if d.Date != time.Now().Format(model.DateLayout) {
		t.Errorf("expected today as default date, got %s", d.Date)
	}
}

func TestExecuteAddDateNoMatchIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)
	c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	before := append([]model.Person{}, c.People()...)

	if c.Execute(ctx, model.Command{Action: model.ActionAddDate, Data: model.CommandData{Name: "Zoe"}}) {
		t.Error("expected no-op for nonexistent person")
	}
	if !reflect.DeepEqual(c.People(), before) {
		t.Error("expected collection unchanged")
	}
}

func TestExecuteAddPreference(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)
	c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	applied := c.Execute(ctx, model.Command{
		Action: model.ActionAddPreference,
		Data:   model.CommandData{Name: "Sarah", Content: "likes green tea"},
	})
	if !applied {
		t.Fatal("expected ADD_PREFERENCE to apply")
	}

	prefs := c.People()[0].Preferences
	if len(prefs) != 1 || prefs[0].Category != "fact" || prefs[0].Content != "likes green tea" {
		t.Errorf("unexpected preferences %+v", prefs)
	}
}

func TestMatchByNamePrefersExact(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)
	// Prepend order puts Joanna first in the collection, so a plain
	// substring scan would return her; the exact match must still win.
	c.CreatePerson(ctx, CreateParams{Name: "Ann"})
	c.CreatePerson(ctx, CreateParams{Name: "Joanna"})

	got := c.matchByName("ann")
	if got == nil || got.Name != "Ann" {
		t.Fatalf("expected exact match Ann, got %+v", got)
	}

	// Pure substring still works when no exact match exists.
	got = c.matchByName("oan")
	if got == nil || got.Name != "Joanna" {
		t.Fatalf("expected substring match Joanna, got %+v", got)
	}

	if c.matchByName("") != nil {
		t.Error("expected no match for empty name")
	}
}
