package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"newsreel/internal/domain"
)

const defaultTopLimit = 10

// RecordLister is the read-only slice of the record store the API consumes.
type RecordLister interface {
	TopRecords(ctx context.Context, statuses []domain.Status, limit int, since *time.Time) ([]domain.NewsRecord, error)
	CountByStatus(ctx context.Context) (map[domain.Status]int, error)
}

type Server struct {
	store  RecordLister
	logger *slog.Logger
}

func NewServer(store RecordLister, logger *slog.Logger) *Server {
	return &Server{store: store, logger: logger.With("component", "api")}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/top-news", s.handleTopNews)
	r.Get("/stats", s.handleStats)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type topNewsItem struct {
	ID          int64         `json:"id"`
	Headline    string        `json:"headline"`
	Domain      string        `json:"domain"`
	Source      string        `json:"source"`
	PublishedAt time.Time     `json:"published_at"`
	Status      domain.Status `json:"status"`
	Relevancy   *int          `json:"relevancy,omitempty"`
	Caption     *string       `json:"caption,omitempty"`
	VideoURL    *string       `json:"video_url,omitempty"`
	InstagramID *string       `json:"instagram_id,omitempty"`
}

// handleTopNews returns the best rendered or posted records, optionally
// windowed: /top-news?limit=5&window=24h
func (s *Server) handleTopNews(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			s.writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	var since *time.Time
	if raw := r.URL.Query().Get("window"); raw != "" {
		window, err := time.ParseDuration(raw)
		if err != nil || window <= 0 {
			s.writeError(w, http.StatusBadRequest, "window must be a positive duration")
			return
		}
		cutoff := time.Now().Add(-window)
		since = &cutoff
	}

	statuses := []domain.Status{domain.StatusVideoGenerated, domain.StatusPosted}
	records, err := s.store.TopRecords(r.Context(), statuses, limit, since)
	if err != nil {
		s.logger.Error("top records query failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	items := make([]topNewsItem, 0, len(records))
	for _, rec := range records {
		items = append(items, topNewsItem{
			ID:          rec.ID,
			Headline:    rec.Headline,
			Domain:      rec.Domain,
			Source:      rec.Source,
			PublishedAt: rec.PublishedAt,
			Status:      rec.Status,
			Relevancy:   rec.Relevancy,
			Caption:     rec.Caption,
			VideoURL:    rec.VideoURL,
			InstagramID: rec.InstagramID,
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"news": items})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountByStatus(r.Context())
	if err != nil {
		s.logger.Error("stats query failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"counts": counts})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
