package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsreel/internal/config"
	"newsreel/internal/domain"
)

// Outcome is the result of running one record through a stage handler.
type Outcome struct {
	status  domain.Status
	fields  map[string]any
	reject  string
	errType domain.ErrorType
	errMsg  string
	failed  bool
}

// Succeed commits the produced fields together with the success status and
// clears any prior error state.
func Succeed(status domain.Status, fields map[string]any) Outcome {
	return Outcome{status: status, fields: fields}
}

// Reject marks the record INVALID_ARTICLE with the given reason. Rejection
// is terminal but is not an error: the error fields stay unset.
func Reject(reason string) Outcome {
	return Outcome{status: domain.StatusInvalidArticle, reject: reason}
}

// Fail records a stage failure. The stage supplies the ERROR_* status; prior
// content fields are left untouched.
func Fail(errType domain.ErrorType, format string, args ...any) Outcome {
	return Outcome{failed: true, errType: errType, errMsg: fmt.Sprintf(format, args...)}
}

// HandlerFunc runs one claimed record through a stage's capability.
type HandlerFunc func(ctx context.Context, rec *domain.NewsRecord) Outcome

// Stage is a generic stage worker: select candidates by status, claim each
// one, invoke the capability, and commit the outcome in a single atomic
// update. One record's failure never aborts its siblings.
type Stage struct {
	name       string
	failStatus domain.Status
	store      RecordStore
	events     EventPublisher
	cfg        config.StageConfig
	owner      string
	logger     *slog.Logger
	handle     HandlerFunc
}

func NewStage(
	name string,
	failStatus domain.Status,
	store RecordStore,
	events EventPublisher,
	cfg config.StageConfig,
	owner string,
	logger *slog.Logger,
	handle HandlerFunc,
) *Stage {
	return &Stage{
		name:       name,
		failStatus: failStatus,
		store:      store,
		events:     events,
		cfg:        cfg,
		owner:      owner,
		logger:     logger.With("stage", name),
		handle:     handle,
	}
}

func (s *Stage) Name() string {
	return s.name
}

func (s *Stage) Run(ctx context.Context) (*domain.StageStats, error) {
	start := time.Now()
	stats := &domain.StageStats{Stage: s.name}

	candidates, err := s.store.FindCandidates(ctx, s.cfg.Statuses, s.cfg.Batch, s.cfg.Lease)
	if err != nil {
		return stats, fmt.Errorf("find candidates: %w", err)
	}
	stats.Selected = len(candidates)

	s.logger.Info("stage run started", "candidates", len(candidates), "batch", s.cfg.Batch)

	for i := range candidates {
		rec := &candidates[i]

		claimed, err := s.store.Claim(ctx, rec.ID, rec.Status, s.owner, s.cfg.Lease)
		if err != nil {
			s.logger.Error("claim failed", "record_id", rec.ID, "error", err)
			stats.Skipped++
			continue
		}
		if !claimed {
			// Another worker won the record since we selected it.
			stats.Skipped++
			continue
		}
		stats.Claimed++

		s.processRecord(ctx, rec, stats)

		if ctx.Err() != nil {
			break
		}
	}

	stats.Duration = time.Since(start)

	s.logger.Info("stage run completed",
		"selected", stats.Selected,
		"claimed", stats.Claimed,
		"succeeded", stats.Succeeded,
		"rejected", stats.Rejected,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *Stage) processRecord(ctx context.Context, rec *domain.NewsRecord, stats *domain.StageStats) {
	outcome := s.invoke(ctx, rec)

	fields := make(map[string]any, len(outcome.fields)+4)

	switch {
	case outcome.failed:
		outcome.status = s.failStatus
		fields["status"] = outcome.status
		fields["error_type"] = outcome.errType
		fields["error_message"] = outcome.errMsg
		fields["error_at"] = time.Now().UTC()
		stats.Failed++
		s.logger.Error("record failed",
			"record_id", rec.ID,
			"headline", rec.Headline,
			"error_type", outcome.errType,
			"error", outcome.errMsg,
		)
	case outcome.status == domain.StatusInvalidArticle:
		fields["status"] = outcome.status
		fields["reject_reason"] = outcome.reject
		fields["error_type"] = nil
		fields["error_message"] = nil
		fields["error_at"] = nil
		stats.Rejected++
		s.logger.Info("record rejected",
			"record_id", rec.ID,
			"headline", rec.Headline,
			"reason", outcome.reject,
		)
	default:
		for col, val := range outcome.fields {
			fields[col] = val
		}
		fields["status"] = outcome.status
		fields["error_type"] = nil
		fields["error_message"] = nil
		fields["error_at"] = nil
		stats.Succeeded++
		s.logger.Info("record advanced",
			"record_id", rec.ID,
			"headline", rec.Headline,
			"to", outcome.status,
		)
	}

	if err := s.store.UpdateFields(ctx, rec.ID, fields); err != nil {
		s.logger.Error("commit failed", "record_id", rec.ID, "error", err)
		return
	}

	s.emit(ctx, rec, outcome)
}

// invoke runs the handler with panic confinement: a panicking capability
// wrapper becomes a record-level failure, never a crashed scheduler loop.
func (s *Stage) invoke(ctx context.Context, rec *domain.NewsRecord) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Fail(domain.ErrorTypeUnexpected, "panic in %s handler: %v", s.name, r)
		}
	}()
	return s.handle(ctx, rec)
}

func (s *Stage) emit(ctx context.Context, rec *domain.NewsRecord, outcome Outcome) {
	if s.events == nil {
		return
	}

	t := domain.Transition{
		RecordID: rec.ID,
		Stage:    s.name,
		From:     rec.Status,
		To:       outcome.status,
		At:       time.Now().UTC(),
	}
	if outcome.failed {
		errType := outcome.errType
		t.ErrorType = &errType
	}

	if err := s.events.PublishTransition(ctx, t); err != nil {
		s.logger.Warn("transition event not published", "record_id", rec.ID, "error", err)
	}
}
