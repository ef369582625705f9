package service

import (
	"context"
	"errors"
	"log/slog"

	"newsreel/internal/ai"
	"newsreel/internal/config"
	"newsreel/internal/domain"
)

// NewScriptStage builds the stage that generates the video script payload
// for validated articles. Its candidate set normally includes ERROR_SCRIPT,
// making script generation the one auto-retried stage.
func NewScriptStage(
	store RecordStore,
	generator ScriptGenerator,
	events EventPublisher,
	cfg config.StageConfig,
	owner string,
	logger *slog.Logger,
) *Stage {
	handle := func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		payload, err := generator.GenerateScript(ctx, rec.Headline, rec.Article)
		if err != nil {
			// A well-formed call returning the wrong shape is an output
			// failure; everything else counts against the call itself.
			var outputErr *ai.OutputError
			if errors.As(err, &outputErr) {
				return Fail(domain.ErrorTypeScriptOutput, "%s", outputErr.Error())
			}
			return Fail(domain.ErrorTypeScriptCall, "script generation failed: %v", err)
		}

		fields := map[string]any{
			"sentiment":   payload.Sentiment,
			"video_title": payload.VideoTitle,
			"hashtags":    payload.Hashtags,
			"caption":     payload.Caption,
		}
		if len(payload.Script) > 0 {
			fields["script"] = payload.Script
		}

		return Succeed(domain.StatusScriptGenerated, fields)
	}

	return NewStage("script", domain.StatusErrorScript, store, events, cfg, owner, logger, handle)
}
