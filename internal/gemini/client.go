// Package gemini is the client for the generative-AI collaborator.
// Every public call degrades to a neutral fallback on failure; errors
// are logged, never returned to the caller.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// Model routing mirrors the original service: flash for text and
	// command parsing, pro for grounded product search, the image
	// model for portraits.
	defaultFlashModel = "gemini-3-flash-preview"
	defaultProModel   = "gemini-3-pro-preview"
	defaultImageModel = "gemini-2.5-flash-image"
)

// Client talks to the Generative Language REST API.
type Client struct {
	baseURL    string
	apiKey     string
	flashModel string
	proModel   string
	imageModel string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client with the given API key.
func NewClient(apiKey string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		flashModel: defaultFlashModel,
		proModel:   defaultProModel,
		imageModel: defaultImageModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        log,
	}
}

// NewFromEnv creates a client from environment variables.
// GEMINI_API_KEY: API key (empty key still works against a proxy base URL)
// GEMINI_MODEL: override for the text model
// GEMINI_BASE_URL: base URL override
func NewFromEnv(log *zap.Logger) *Client {
	c := NewClient(os.Getenv("GEMINI_API_KEY"), log)
	if url := os.Getenv("GEMINI_BASE_URL"); url != "" {
		c.baseURL = url
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		c.flashModel = model
	}
	return c
}

// --- wire types ---

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	ImageConfig      *imageConfig   `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	Tools            []tool            `json:"tools,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content           content `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web struct {
					URI string `json:"uri"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// callOpts selects the model and optional structured-output config.
type callOpts struct {
	model        string
	schema       map[string]any
	googleSearch bool
	aspectRatio  string
}

func (c *Client) generate(ctx context.Context, prompt string, opts callOpts) (*generateResponse, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	cfg := &generationConfig{}
	if opts.schema != nil {
		cfg.ResponseMimeType = "application/json"
		cfg.ResponseSchema = opts.schema
	}
	if opts.aspectRatio != "" {
		cfg.ImageConfig = &imageConfig{AspectRatio: opts.aspectRatio}
	}
	if cfg.ResponseMimeType != "" || cfg.ImageConfig != nil {
		req.GenerationConfig = cfg
	}
	if opts.googleSearch {
		req.Tools = []tool{{GoogleSearch: &struct{}{}}}
	}

	body, _ := json.Marshal(req)
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, opts.model)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini error %d: %s", resp.StatusCode, string(b))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// text returns the concatenated text parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// image returns the first inline image payload of the first candidate.
func (r *generateResponse) image() ([]byte, bool) {
	if len(r.Candidates) == 0 {
		return nil, false
	}
	for _, p := range r.Candidates[0].Content.Parts {
		if p.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, false
			}
			return data, true
		}
	}
	return nil, false
}

// groundingURIs returns web URIs from the first candidate's grounding
// metadata, in order.
func (r *generateResponse) groundingURIs() []string {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var uris []string
	for _, ch := range r.Candidates[0].GroundingMetadata.GroundingChunks {
		uris = append(uris, ch.Web.URI)
	}
	return uris
}
