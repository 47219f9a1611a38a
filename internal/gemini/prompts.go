package gemini

import (
	"fmt"
	"strings"

	"github.com/kokorohq/kokoro/internal/model"
)

const advicePromptTemplate = `
Based ONLY on the following information about %s, who is my %s, provide 3 thoughtful, small gestures or gift ideas.

Preferences:
%s

Important Dates:
%s

Context:
%s

Be minimalist, warm, and avoid generic suggestions. Focus on the specific details provided.
Format as a brief list. Do not use markdown headers.`

const insightPromptTemplate = `
Analyze the current bond with %s (%s).
Nuances: %s
Narrative: %s

Provide:
1. A "Bond Status" (2-3 words, e.g., "Quietly Steadfast", "Evolving Complexity").
2. A brief analysis of the relationship's current "vibe".
3. One "Nurture Action" - a non-generic way to deepen this specific connection.

Return in JSON format.`

const portraitPromptTemplate = `An abstract, minimalist soul portrait representing a %s named %s.
Themes: %s.
Style: Organic shapes, textured fine art, Bauhaus mixed with Japanese wabi-sabi.
Colors: Earthy and muted.
No faces, no text, no realistic people. Pure symbolic abstraction.`

const productsPromptTemplate = `
Find 3 specific, real products that would make great gifts for %s (%s).
Their interests/nuances: %s.

For each product, provide:
1. Product Name
2. Approximate Price
3. Why it fits them specifically.

Use Google Search to ensure these are real, currently available items.
Return the response in a structured JSON format.`

const commandPromptTemplate = `
You are the Kokoro AI Assistant. You help users manage their relationship circle.

Users might want to:
1. ADD_PERSON: Add a new person
2. ADD_DATE: Add a date/event
3. ADD_PREFERENCE: Add a nuance/fact
4. UPDATE_PERSON: Update contact info or details
5. NONE: Just chat or ask for advice.

Existing people: %s

Analyze the user's input: "%s"

Return JSON with message and command.`

const occasionsPromptTemplate = `
Suggest 5 relevant annual occasions or rituals for %s, who is my %s.
Context: %s
Nuances: %s

Include standard holidays if relevant (e.g., Mother's Day if relationship is Mother) and unique rituals based on their notes/preferences.
For each, provide:
1. Label (e.g., "Mother's Day", "Coffee Date Anniversary")
2. Approximate Date (MM-DD format)
3. Reason (Briefly why this is suggested)

Return in JSON format.`

// preferencesBlock renders preferences as "- category: content" lines.
func preferencesBlock(p model.Person) string {
	var lines []string
	for _, pref := range p.Preferences {
		lines = append(lines, fmt.Sprintf("- %s: %s", pref.Category, pref.Content))
	}
	return strings.Join(lines, "\n")
}

// datesBlock renders important dates as "- label: date" lines.
func datesBlock(p model.Person) string {
	var lines []string
	for _, d := range p.Dates {
		lines = append(lines, fmt.Sprintf("- %s: %s", d.Label, d.Date))
	}
	return strings.Join(lines, "\n")
}

// nuances joins preference contents, optionally capped.
func nuances(p model.Person, max int) string {
	var parts []string
	for _, pref := range p.Preferences {
		if max > 0 && len(parts) >= max {
			break
		}
		parts = append(parts, pref.Content)
	}
	return strings.Join(parts, ", ")
}

// --- structured-output schemas ---

var insightSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"status": map[string]any{"type": "STRING"},
		"vibe":   map[string]any{"type": "STRING"},
		"action": map[string]any{"type": "STRING"},
	},
	"required": []string{"status", "vibe", "action"},
}

var productsSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name":   map[string]any{"type": "STRING"},
			"price":  map[string]any{"type": "STRING"},
			"reason": map[string]any{"type": "STRING"},
			"url":    map[string]any{"type": "STRING"},
		},
		"required": []string{"name", "reason"},
	},
}

var commandSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"message": map[string]any{"type": "STRING"},
		"command": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"action": map[string]any{"type": "STRING"},
				"data": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"name":         map[string]any{"type": "STRING"},
						"relationship": map[string]any{"type": "STRING"},
						"label":        map[string]any{"type": "STRING"},
						"date":         map[string]any{"type": "STRING"},
						"content":      map[string]any{"type": "STRING"},
						"phone":        map[string]any{"type": "STRING"},
						"email":        map[string]any{"type": "STRING"},
						"address":      map[string]any{"type": "STRING"},
						"notes":        map[string]any{"type": "STRING"},
						"nickname":     map[string]any{"type": "STRING"},
					},
				},
			},
		},
	},
	"required": []string{"message"},
}

var occasionsSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"label":  map[string]any{"type": "STRING"},
			"date":   map[string]any{"type": "STRING", "description": "MM-DD format"},
			"reason": map[string]any{"type": "STRING"},
		},
		"required": []string{"label", "date", "reason"},
	},
}
