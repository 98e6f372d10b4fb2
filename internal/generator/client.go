// Package generator is the HTTP client for the external candidate text
// generator. It speaks a chat-completions style API and tolerates sloppy
// model output: strict JSON, JSON wrapped in prose, fenced code blocks, or
// garbage (which surfaces as a parse error for the fallback ladder).
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/neexbeast/tripmuse/internal/engine"
)

const httpTimeout = 20 * time.Second

// Config holds the generator endpoint and model configurations.
type Config struct {
	BaseURL        string
	APIKey         string
	PrimaryModel   string
	SecondaryModel string
	// Temperature for candidate generation; itineraries use a lower one.
	Temperature float64
}

// Client calls the external text generator.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient constructs a Client with the production HTTP timeout.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, client: &http.Client{Timeout: httpTimeout}}
}

// NewClientWithHTTP constructs a Client with a custom http.Client (for tests).
func NewClientWithHTTP(cfg Config, hc *http.Client) *Client {
	return &Client{cfg: cfg, client: hc}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) model(tier engine.ModelTier) string {
	if tier == engine.TierSecondary {
		return c.cfg.SecondaryModel
	}
	return c.cfg.PrimaryModel
}

// Generate asks the model for a strict-JSON candidate list and parses it
// leniently. Failures are wrapped with the engine's upstream error taxonomy.
func (c *Client) Generate(ctx context.Context, tier engine.ModelTier, spec engine.GenerationSpec) ([]engine.RawCandidate, error) {
	temp := c.cfg.Temperature
	if temp <= 0 {
		temp = 0.8
	}

	content, err := c.complete(ctx, c.model(tier), buildCandidatePrompt(spec), temp)
	if err != nil {
		return nil, err
	}

	raws, err := ExtractCandidates(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrUpstreamParse, err)
	}
	return raws, nil
}

// complete performs one chat completion and returns the message content.
func (c *Client) complete(ctx context.Context, model, prompt string, temperature float64) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return "", fmt.Errorf("%w: model %s: %v", engine.ErrUpstreamTimeout, model, err)
		}
		return "", fmt.Errorf("%w: model %s: %v", engine.ErrUpstreamTransport, model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Upstream error bodies are not propagated beyond logs.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: model %s: status %d", engine.ErrUpstreamTransport, model, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decoding chat response: %v", engine.ErrUpstreamTransport, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", engine.ErrUpstreamParse)
	}

	return parsed.Choices[0].Message.Content, nil
}
