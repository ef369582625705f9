package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"newsreel/internal/config"
)

// Gemini calls the Gemini generateContent API for content validation and
// script generation.
type Gemini struct {
	httpClient  *http.Client
	endpoint    string
	model       string
	apiKey      string
	maxAttempts int
	logger      *slog.Logger
}

func NewGemini(cfg config.GeminiConfig, logger *slog.Logger) *Gemini {
	return &Gemini{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger.With("component", "gemini"),
	}
}

// Validate asks the model whether the headline is genuine, India-related news.
func (g *Gemini) Validate(ctx context.Context, headline string) (*Verdict, error) {
	prompt := strings.ReplaceAll(validationPrompt, "{headline}", headline)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseVerdict(text)
}

// GenerateScript asks the model for the video script payload built from the
// headline and article body.
func (g *Gemini) GenerateScript(ctx context.Context, headline, article string) (*ScriptPayload, error) {
	prompt := strings.NewReplacer(
		"{headline}", headline,
		"{article}", article,
	).Replace(scriptPrompt)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseScriptPayload(text)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends the prompt and returns the first candidate's text.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.endpoint, g.model, g.apiKey)

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		text, err := g.doGenerate(ctx, url, body)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == g.maxAttempts {
			break
		}

		backoff := time.Duration(attempt) * time.Second
		g.logger.Warn("gemini request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}

	return "", fmt.Errorf("%w: after %d attempts: %v", ErrNoResponse, g.maxAttempts, lastErr)
}

func (g *Gemini) doGenerate(ctx context.Context, url string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoResponse
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
