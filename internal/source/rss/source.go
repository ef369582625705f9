package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"newsreel/internal/config"
	"newsreel/internal/domain"
)

const SourceID = "rss"

// Source reads configured RSS feeds and scrapes each linked article for its
// full body.
type Source struct {
	feeds      []config.RSSFeed
	maxPerFeed int
	parser     *gofeed.Parser
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	Feeds      []config.RSSFeed
	MaxPerFeed int
	Timeout    time.Duration
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Source{
		feeds:      cfg.Feeds,
		maxPerFeed: cfg.MaxPerFeed,
		parser:     gofeed.NewParser(),
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
	return "RSS feeds"
}

// Fetch pulls the newest entries from every configured feed. A broken feed
// is logged and skipped.
func (s *Source) Fetch(ctx context.Context) ([]domain.NewsRecord, error) {
	var records []domain.NewsRecord

	for _, feed := range s.feeds {
		items, err := s.fetchFeed(ctx, feed)
		if err != nil {
			s.logger.Error("feed fetch failed", "feed", feed.URL, "error", err)
			continue
		}
		records = append(records, items...)
	}

	return records, nil
}

func (s *Source) fetchFeed(ctx context.Context, feed config.RSSFeed) ([]domain.NewsRecord, error) {
	parsed, err := s.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := parsed.Items
	if s.maxPerFeed > 0 && len(items) > s.maxPerFeed {
		items = items[:s.maxPerFeed]
	}

	dom := strings.Join(feed.Tags, ", ")

	var records []domain.NewsRecord
	for _, item := range items {
		article := s.scrapeArticle(ctx, item.Link)
		if article == "" {
			article = item.Description
		}

		publishedAt := time.Now().UTC()
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed.UTC()
		}

		records = append(records, domain.NewsRecord{
			Headline:    item.Title,
			Article:     article,
			Domain:      dom,
			Source:      feed.Source,
			PublishedAt: publishedAt,
		})
	}

	return records, nil
}

// scrapeArticle pulls the paragraph text from the article page; an empty
// string means the caller should fall back to the feed summary.
func (s *Source) scrapeArticle(ctx context.Context, link string) string {
	if link == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return ""
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("article scrape failed", "url", link, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n")
}
