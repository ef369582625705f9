package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"newsreel/internal/config"
	"newsreel/internal/domain"
	"newsreel/internal/media"
)

// NewRenderStage builds the stage that composes the final video for records
// with a generated script and uploads it for publishing. Every failure in
// asset resolution, composition or upload lands in ERROR_VIDEO; those are
// re-admitted only by manual re-queue.
func NewRenderStage(
	store RecordStore,
	assets AssetResolver,
	composer VideoComposer,
	uploader ArtifactUploader,
	events EventPublisher,
	cfg config.StageConfig,
	mediaCfg config.MediaConfig,
	owner string,
	logger *slog.Logger,
) *Stage {
	handle := func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		if rec.Sentiment == nil {
			return Fail(domain.ErrorTypeVideo, "record has no sentiment")
		}
		sentiment := *rec.Sentiment

		var caption string
		if rec.Caption != nil {
			caption = *rec.Caption
		}

		title := fmt.Sprintf("video_%d", rec.ID)
		if rec.VideoTitle != nil && *rec.VideoTitle != "" {
			title = *rec.VideoTitle
		}

		videoPath, err := assets.BackgroundVideo(rec.Domain, sentiment)
		if err != nil {
			return Fail(domain.ErrorTypeVideo, "%v", err)
		}
		musicPath, err := assets.BackgroundMusic(sentiment)
		if err != nil {
			return Fail(domain.ErrorTypeVideo, "%v", err)
		}

		today := time.Now().Format("2006-01-02")
		filename := media.SafeFilename(title) + ".mp4"
		outputPath := filepath.Join(mediaCfg.OutputDir, today, filename)

		if err := composer.Compose(ctx, videoPath, musicPath, caption, outputPath); err != nil {
			return Fail(domain.ErrorTypeVideo, "compose video: %v", err)
		}

		destKey := fmt.Sprintf("videos/%s/%s", today, filename)
		publicURL, err := uploader.Upload(ctx, outputPath, destKey)
		if err != nil {
			return Fail(domain.ErrorTypeVideo, "upload video: %v", err)
		}

		return Succeed(domain.StatusVideoGenerated, map[string]any{
			"video_url":        publicURL,
			"video_local_path": outputPath,
		})
	}

	return NewStage("render", domain.StatusErrorVideo, store, events, cfg, owner, logger, handle)
}
