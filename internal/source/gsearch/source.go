package gsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsreel/internal/domain"
)

const (
	SourceID       = "gsearch"
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"
)

// Source fetches news headlines from the Google Custom Search API, one
// named query per content domain.
type Source struct {
	queries    map[string]string
	apiKey     string
	cx         string
	maxResults int
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	Queries    map[string]string
	APIKey     string
	CX         string
	MaxResults int
	BaseURL    string
	Timeout    time.Duration
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Source{
		queries:    cfg.Queries,
		apiKey:     cfg.APIKey,
		cx:         cfg.CX,
		maxResults: cfg.MaxResults,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return "Google Custom Search"
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// Fetch runs every configured query. A failing query is logged and skipped.
func (s *Source) Fetch(ctx context.Context) ([]domain.NewsRecord, error) {
	if s.apiKey == "" || s.cx == "" {
		return nil, fmt.Errorf("google custom search credentials not configured")
	}

	var records []domain.NewsRecord

	for dom, query := range s.queries {
		items, err := s.search(ctx, query)
		if err != nil {
			s.logger.Error("search failed", "domain", dom, "error", err)
			continue
		}

		for _, item := range items {
			records = append(records, domain.NewsRecord{
				Headline:    item.Title,
				Article:     item.Snippet,
				Domain:      capitalize(dom),
				Source:      item.DisplayLink,
				PublishedAt: time.Now().UTC(),
			})
		}
	}

	return records, nil
}

func (s *Source) search(ctx context.Context, query string) ([]searchItem, error) {
	params := url.Values{
		"q":    {query},
		"key":  {s.apiKey},
		"cx":   {s.cx},
		"sort": {"date"},
		"num":  {fmt.Sprint(s.maxResults)},
		"gl":   {"in"},
		"hl":   {"en"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return parsed.Items, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
