package service

import (
	"context"
	"errors"
	"log/slog"

	"newsreel/internal/config"
	"newsreel/internal/domain"
	"newsreel/internal/publish"
)

// NewPublishStage builds the stage that posts rendered videos. Its batch is
// normally 1 to bound the publish rate. Failures are tagged by origin:
// Graph API errors, readiness timeouts, and everything else.
func NewPublishStage(
	store RecordStore,
	publisher ReelPublisher,
	events EventPublisher,
	cfg config.StageConfig,
	owner string,
	logger *slog.Logger,
) *Stage {
	handle := func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		if rec.VideoURL == nil || *rec.VideoURL == "" {
			return Fail(domain.ErrorTypeUnexpected, "record has no video_url")
		}

		var caption string
		if rec.Caption != nil {
			caption = *rec.Caption
		}

		postID, err := publisher.PublishReel(ctx, *rec.VideoURL, caption)
		if err != nil {
			var timeoutErr *publish.TimeoutError
			if errors.As(err, &timeoutErr) {
				return Fail(domain.ErrorTypePublishTimeout, "%s", timeoutErr.Error())
			}
			var apiErr *publish.APIError
			if errors.As(err, &apiErr) {
				return Fail(domain.ErrorTypePublishAPI, "%s", apiErr.Error())
			}
			return Fail(domain.ErrorTypeUnexpected, "publish failed: %v", err)
		}

		return Succeed(domain.StatusPosted, map[string]any{
			"instagram_id": postID,
		})
	}

	return NewStage("publish", domain.StatusErrorPost, store, events, cfg, owner, logger, handle)
}
