package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kokorohq/kokoro/internal/model"
)

const adviceFallback = "I couldn't generate insights right now. Please try again later."
const commandFallback = "I'm having trouble processing that right now."

// RelationshipAdvice asks for small gesture and gift ideas. On failure
// an apologetic message is returned instead of an error.
func (c *Client) RelationshipAdvice(ctx context.Context, person model.Person) string {
	prompt := fmt.Sprintf(advicePromptTemplate,
		person.Name, person.Relationship,
		preferencesBlock(person), datesBlock(person), person.Notes)

	resp, err := c.generate(ctx, prompt, callOpts{model: c.flashModel})
	if err != nil {
		c.log.Warn("relationship advice failed", zap.Error(err))
		return adviceFallback
	}
	text := strings.TrimSpace(resp.text())
	if text == "" {
		return adviceFallback
	}
	return text
}

// BondInsight asks for a structured read on the relationship. Returns
// nil on any failure.
func (c *Client) BondInsight(ctx context.Context, person model.Person) *model.BondInsight {
	prompt := fmt.Sprintf(insightPromptTemplate,
		person.Name, person.Relationship, nuances(person, 0), person.Notes)

	resp, err := c.generate(ctx, prompt, callOpts{model: c.flashModel, schema: insightSchema})
	if err != nil {
		c.log.Warn("bond insight failed", zap.Error(err))
		return nil
	}

	var insight model.BondInsight
	if err := json.Unmarshal([]byte(resp.text()), &insight); err != nil {
		c.log.Warn("bond insight parse failed", zap.Error(err))
		return nil
	}
	return &insight
}

// SoulPortrait generates an abstract portrait image. Returns nil bytes
// on any failure.
func (c *Client) SoulPortrait(ctx context.Context, person model.Person) []byte {
	prompt := fmt.Sprintf(portraitPromptTemplate,
		person.Relationship, person.Name, nuances(person, 5))

	resp, err := c.generate(ctx, prompt, callOpts{model: c.imageModel, aspectRatio: "1:1"})
	if err != nil {
		c.log.Warn("soul portrait failed", zap.Error(err))
		return nil
	}
	img, ok := resp.image()
	if !ok {
		c.log.Warn("soul portrait returned no image")
		return nil
	}
	return img
}

// ProductRecommendations runs a web-grounded search for real gifts.
// Returns an empty slice on any failure. Missing product URLs are
// backfilled from the response's grounding chunks, first per index and
// then from the first chunk.
func (c *Client) ProductRecommendations(ctx context.Context, person model.Person) []model.ProductRecommendation {
	prompt := fmt.Sprintf(productsPromptTemplate,
		person.Name, person.Relationship, nuances(person, 0))

	resp, err := c.generate(ctx, prompt, callOpts{
		model:        c.proModel,
		schema:       productsSchema,
		googleSearch: true,
	})
	if err != nil {
		c.log.Warn("product search failed", zap.Error(err))
		return []model.ProductRecommendation{}
	}

	var products []model.ProductRecommendation
	if err := json.Unmarshal([]byte(resp.text()), &products); err != nil {
		c.log.Warn("product search parse failed", zap.Error(err))
		return []model.ProductRecommendation{}
	}

	uris := resp.groundingURIs()
	for i := range products {
		if products[i].URL != "" {
			continue
		}
		if i < len(uris) {
			products[i].URL = uris[i]
		} else if len(uris) > 0 {
			products[i].URL = uris[0]
		}
	}
	return products
}

// CommandResult is the assistant's reply to free-text input.
type CommandResult struct {
	Message string        `json:"message"`
	Command model.Command `json:"command"`
}

// ProcessCommand parses free text into a chat message plus a structured
// command. On failure the fallback message with a NONE command is
// returned.
func (c *Client) ProcessCommand(ctx context.Context, input string, existingNames []string) CommandResult {
	fallback := CommandResult{
		Message: commandFallback,
		Command: model.Command{Action: model.ActionNone},
	}

	prompt := fmt.Sprintf(commandPromptTemplate, strings.Join(existingNames, ", "), input)

	resp, err := c.generate(ctx, prompt, callOpts{model: c.flashModel, schema: commandSchema})
	if err != nil {
		c.log.Warn("command processing failed", zap.Error(err))
		return fallback
	}

	var result CommandResult
	if err := json.Unmarshal([]byte(resp.text()), &result); err != nil {
		c.log.Warn("command parse failed", zap.Error(err))
		return fallback
	}
	if result.Command.Action == "" {
		result.Command.Action = model.ActionNone
	}
	return result
}

// SuggestOccasions asks for annual occasions worth tracking for the
// person. Returns an empty slice on any failure.
func (c *Client) SuggestOccasions(ctx context.Context, person model.Person) []model.OccasionSuggestion {
	prompt := fmt.Sprintf(occasionsPromptTemplate,
		person.Name, person.Relationship, person.Notes, nuances(person, 0))

	resp, err := c.generate(ctx, prompt, callOpts{model: c.flashModel, schema: occasionsSchema})
	if err != nil {
		c.log.Warn("occasion suggestions failed", zap.Error(err))
		return []model.OccasionSuggestion{}
	}

	var suggestions []model.OccasionSuggestion
	if err := json.Unmarshal([]byte(resp.text()), &suggestions); err != nil {
		c.log.Warn("occasion suggestions parse failed", zap.Error(err))
		return []model.OccasionSuggestion{}
	}
	return suggestions
}
