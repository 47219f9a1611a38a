package circle

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kokorohq/kokoro/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)

	sarah, _ := c.CreatePerson(ctx, CreateParams{Name: "Sarah", Notes: "climber"})
	c.AddDate(ctx, sarah.ID, DateParams{Label: "Birthday", Date: "2024-03-03", Recurring: true})
	c.AddPreference(ctx, sarah.ID, PreferenceParams{Category: "like", Content: "green tea"})

	var buf bytes.Buffer
	if err := c.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	// Export is a pretty-printed JSON array.
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "[") {
		t.Errorf("expected array payload, got %q", buf.String()[:20])
	}
	var decoded []model.Person
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}

	other, _ := newTestCircle(t)
	n, err := other.Import(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 imported, got %d", n)
	}
	if !reflect.DeepEqual(other.People(), c.People()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", other.People(), c.People())
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCircle(t)
	c.CreatePerson(ctx, CreateParams{Name: "Sarah"})

	before := append([]model.Person{}, c.People()...)

	tests := []struct {
		name    string
		payload string
	}{
		{"object", `{"name":"Sarah"}`},
		{"garbage", `]]]`},
		{"string", `"people"`},
		{"null", `null`},
		{"empty", ``},
		{"whitespace", "  \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Import(ctx, strings.NewReader(tt.payload))
			if err == nil {
				t.Fatal("expected import to be rejected")
			}
			if !reflect.DeepEqual(c.People(), before) {
				t.Error("expected collection unchanged after rejected import")
			}
		})
	}
}

func TestImportReplaces(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCircle(t)
	c.CreatePerson(ctx, CreateParams{Name: "Old"})

	payload := `[{"id":"x1","name":"New","relationship":"Friend","pinned":false,"preferences":[],"dates":[],"notes":""}]`
	n, err := c.Import(ctx, strings.NewReader(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 imported, got %d", n)
	}
	if len(c.People()) != 1 || c.People()[0].Name != "New" {
		t.Errorf("expected full replacement, got %+v", c.People())
	}

	reloaded := Load(ctx, s, nil)
	if len(reloaded.People()) != 1 || reloaded.People()[0].Name != "New" {
		t.Error("expected import to be flushed")
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, time.June, 1, 15, 4, 5, 0, time.UTC)
	if got := ExportFilename(now); got != "kokoro_export_2024-06-01.json" {
		t.Errorf("unexpected filename %q", got)
	}
}
