package circle

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kokorohq/kokoro/internal/model"
)

// Execute applies a structured assistant command to the collection.
// It returns true when a mutation was applied. Unknown actions, missing
// required fields and failed person matches are silent no-ops; each
// action either fully applies or does nothing.
func (c *Circle) Execute(ctx context.Context, cmd model.Command) bool {
	data := cmd.Data

	switch cmd.Action {
	case model.ActionAddPerson:
		if strings.TrimSpace(data.Name) == "" {
			c.log.Debug("command dropped: ADD_PERSON without name")
			return false
		}
		_, err := c.CreatePerson(ctx, CreateParams{
			Name:         data.Name,
			Nickname:     data.Nickname,
			Relationship: data.Relationship,
			Phone:        data.Phone,
			Email:        data.Email,
			Address:      data.Address,
			Notes:        data.Notes,
		})
		if err != nil {
			c.log.Warn("command failed", zap.String("action", string(cmd.Action)), zap.Error(err))
			return false
		}
		return true

	case model.ActionAddDate:
		person := c.matchByName(data.Name)
		if person == nil {
			c.log.Debug("command dropped: no person match", zap.String("name", data.Name))
			return false
		}
		label := data.Label
		if label == "" {
			label = "Special Occasion"
		}
		date := data.Date
		if date == "" {
			date = c.now().Format(model.DateLayout)
		}
		_, err := c.AddDate(ctx, person.ID, DateParams{
			Label:     label,
			Date:      date,
			Recurring: true,
			LeadDays:  7,
		})
		if err != nil {
			c.log.Warn("command failed", zap.String("action", string(cmd.Action)), zap.Error(err))
			return false
		}
		return true

	case model.ActionAddPreference:
		person := c.matchByName(data.Name)
		if person == nil {
			c.log.Debug("command dropped: no person match", zap.String("name", data.Name))
			return false
		}
		_, err := c.AddPreference(ctx, person.ID, PreferenceParams{
			Category: "fact",
			Content:  data.Content,
		})
		if err != nil {
			c.log.Warn("command failed", zap.String("action", string(cmd.Action)), zap.Error(err))
			return false
		}
		return true
	}

	// NONE, UPDATE_PERSON and anything unrecognized fall through. The
	// assistant advertises UPDATE_PERSON but the executor has never
	// honored it; see DESIGN.md.
	return false
}

// matchByName resolves a person by name for command execution. An exact
// case-insensitive match wins; otherwise the first case-insensitive
// substring match is taken and ties stay silent.
func (c *Circle) matchByName(name string) *model.Person {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for i := range c.people {
		if strings.ToLower(c.people[i].Name) == needle {
			return &c.people[i]
		}
	}
	for i := range c.people {
		if strings.Contains(strings.ToLower(c.people[i].Name), needle) {
			return &c.people[i]
		}
	}
	return nil
}
