package circle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kokorohq/kokoro/internal/model"
)

// Export writes the collection as a pretty-printed JSON array.
func (c *Circle) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	people := c.people
	if people == nil {
		people = []model.Person{}
	}
	return enc.Encode(people)
}

// ExportFilename is the conventional export file name for a given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("kokoro_export_%s.json", now.Format(model.DateLayout))
}

// Import replaces the whole collection with the parsed payload and
// flushes. A payload that is not a JSON array is rejected and the
// existing collection is left untouched.
func (c *Circle) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read import: %w", err)
	}

	// A bare null decodes into a nil slice without error, so require the
	// payload to actually open with an array.
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, fmt.Errorf("invalid format: expected a JSON array of people")
	}
	var probe []json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, fmt.Errorf("invalid format: expected a JSON array of people")
	}

	var people []model.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return 0, fmt.Errorf("invalid format: %w", err)
	}
	if people == nil {
		people = []model.Person{}
	}

	c.people = people
	if err := c.flush(ctx); err != nil {
		return 0, err
	}
	return len(people), nil
}
