package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsreel/internal/domain"
)

// FetchService creates FETCHED records from the configured sources. It has
// no candidate query: new work enters the pipeline here. A failing source
// never blocks the remaining sources.
type FetchService struct {
	sources []Source
	store   RecordStore
	logger  *slog.Logger
}

func NewFetchService(sources []Source, store RecordStore, logger *slog.Logger) *FetchService {
	return &FetchService{
		sources: sources,
		store:   store,
		logger:  logger.With("stage", "fetch"),
	}
}

func (s *FetchService) Name() string {
	return "fetch"
}

func (s *FetchService) Run(ctx context.Context) (*domain.StageStats, error) {
	start := time.Now()
	stats := &domain.StageStats{Stage: "fetch"}

	for _, source := range s.sources {
		records, err := source.Fetch(ctx)
		if err != nil {
			s.logger.Error("source fetch failed", "source", source.ID(), "error", err)
			stats.Failed++
			continue
		}

		s.logger.Info("source fetched", "source", source.ID(), "records", len(records))

		for i := range records {
			rec := &records[i]
			rec.Status = domain.StatusFetched

			if _, err := s.store.Insert(ctx, rec); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					stats.Skipped++
					continue
				}
				s.logger.Error("insert failed", "source", source.ID(), "headline", rec.Headline, "error", err)
				stats.Failed++
				continue
			}
			stats.Succeeded++
		}

		if ctx.Err() != nil {
			break
		}
	}

	stats.Duration = time.Since(start)

	s.logger.Info("fetch completed",
		"new", stats.Succeeded,
		"duplicates", stats.Skipped,
		"errors", stats.Failed,
		"duration", stats.Duration,
	)

	return stats, nil
}
