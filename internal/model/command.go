package model

// Action is the kind of mutation the assistant asked for.
type Action string

const (
	ActionAddPerson     Action = "ADD_PERSON"
	ActionAddDate       Action = "ADD_DATE"
	ActionAddPreference Action = "ADD_PREFERENCE"
	ActionUpdatePerson  Action = "UPDATE_PERSON"
	ActionNone          Action = "NONE"
)

// CommandData carries the fields the assistant extracted from free text.
// Any field may be empty; defaulting happens in the executor.
type CommandData struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Label        string `json:"label,omitempty"`
	Date         string `json:"date,omitempty"`
	Content      string `json:"content,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
}

// Command is a structured mutation request decoded from the assistant.
type Command struct {
	Action Action      `json:"action"`
	Data   CommandData `json:"data"`
}

// BondInsight is the assistant's read on a relationship.
type BondInsight struct {
	Status string `json:"status"`
	Vibe   string `json:"vibe"`
	Action string `json:"action"`
}

// OccasionSuggestion is a proposed annual occasion for a person.
// Date is MM-DD.
type OccasionSuggestion struct {
	Label  string `json:"label"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}
