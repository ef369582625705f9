package service

import (
	"context"
	"errors"
	"log/slog"

	"newsreel/internal/ai"
	"newsreel/internal/config"
	"newsreel/internal/domain"
)

// baselineRelevancy is assigned when the validator returns no score.
const baselineRelevancy = 10

// NewValidateStage builds the stage that turns FETCHED records into
// VALID_ARTICLE or INVALID_ARTICLE.
func NewValidateStage(
	store RecordStore,
	validator ContentValidator,
	events EventPublisher,
	cfg config.StageConfig,
	owner string,
	logger *slog.Logger,
) *Stage {
	handle := func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		verdict, err := validator.Validate(ctx, rec.Headline)
		if err != nil {
			var decodeErr *ai.DecodeError
			if errors.As(err, &decodeErr) {
				// Keep the raw text so a bad model response can be diagnosed
				// from the record alone.
				return Fail(domain.ErrorTypeValidationCall, "%s", decodeErr.Error())
			}
			return Fail(domain.ErrorTypeValidationCall, "validation call failed: %v", err)
		}

		if verdict.Valid != "YES" {
			reason := verdict.Reason
			if reason == "" {
				reason = "Not a valid article."
			}
			return Reject(reason)
		}
		if verdict.RelatedToIndia != "YES" {
			return Reject("Not related to India.")
		}

		relevancy := verdict.Relevancy
		if relevancy <= 0 {
			relevancy = baselineRelevancy
		}

		return Succeed(domain.StatusValidArticle, map[string]any{
			"relevancy": relevancy,
		})
	}

	return NewStage("validate", domain.StatusErrorValidate, store, events, cfg, owner, logger, handle)
}
