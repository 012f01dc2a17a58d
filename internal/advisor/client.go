// Package advisor relays single-turn chat requests to a hosted
// text-generation API. The exchange is stateless: each request carries the
// user query plus a fixed system instruction and temperature, and no
// conversation history is ever sent to the remote side.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// systemInstruction frames every request. Prior turns are for local display
// only, so this is the entire persistent context the model sees.
const systemInstruction = "You are a knowledgeable fitness coach. Give concise, " +
	"practical advice about strength training, recovery and nutrition. " +
	"Recommend consulting a professional for medical concerns."

// ErrEmptyResponse is returned when the API answers 200 with no candidates.
var ErrEmptyResponse = errors.New("advisor: empty response from model")

// Advisor is the chat relay contract the service layer depends on.
type Advisor interface {
	Advise(ctx context.Context, message string) (string, error)
}

// Client calls a generative-language REST API (generateContent shape).
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// Compile-time check: Client satisfies Advisor.
var _ Advisor = (*Client)(nil)

// NewClient creates a Client targeting the given base URL.
func NewClient(baseURL, apiKey, model string, temperature float64) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Request/response wire shapes for the generateContent endpoint.

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction generateContent  `json:"system_instruction"`
	Contents          []generateContent `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Advise sends one user message and returns the model's free-text reply.
func (c *Client) Advise(ctx context.Context, message string) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: generateContent{Parts: []generatePart{{Text: systemInstruction}}},
		Contents: []generateContent{
			{Role: "user", Parts: []generatePart{{Text: message}}},
		},
		GenerationConfig: generationConfig{Temperature: c.temperature},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("advisor: encode request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("advisor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("advisor: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor: model API returned %d: %s", resp.StatusCode, body)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("advisor: decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
