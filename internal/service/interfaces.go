package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsreel/internal/ai"
	"newsreel/internal/domain"
)

// RecordStore is the pipeline's only shared mutable resource. Claim is the
// sole entry point that admits a record into a stage; UpdateFields commits
// a stage outcome atomically and releases the claim.
type RecordStore interface {
	Insert(ctx context.Context, rec *domain.NewsRecord) (int64, error)
	FindCandidates(ctx context.Context, statuses []domain.Status, limit int, lease time.Duration) ([]domain.NewsRecord, error)
	Claim(ctx context.Context, id int64, expected domain.Status, owner string, lease time.Duration) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}

// ContentValidator judges whether a headline is genuine, relevant news.
type ContentValidator interface {
	Validate(ctx context.Context, headline string) (*ai.Verdict, error)
}

// ScriptGenerator produces the video script payload for an article.
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, headline, article string) (*ai.ScriptPayload, error)
}

// AssetResolver locates background video and music for a record.
type AssetResolver interface {
	BackgroundVideo(dom string, sentiment domain.Sentiment) (string, error)
	BackgroundMusic(sentiment domain.Sentiment) (string, error)
}

// VideoComposer renders the final video artifact to outputPath.
type VideoComposer interface {
	Compose(ctx context.Context, videoPath, musicPath, caption, outputPath string) error
}

// ArtifactUploader moves a local artifact to blob storage and returns its
// public URL.
type ArtifactUploader interface {
	Upload(ctx context.Context, localPath, destKey string) (string, error)
}

// ReelPublisher publishes a rendered video and returns the platform post id.
type ReelPublisher interface {
	PublishReel(ctx context.Context, videoURL, caption string) (string, error)
}

// Source supplies fresh news records for the fetch stage.
type Source interface {
	ID() string
	Name() string
	Fetch(ctx context.Context) ([]domain.NewsRecord, error)
}

// EventPublisher observes committed status transitions. A nil publisher
// disables events.
type EventPublisher interface {
	PublishTransition(ctx context.Context, t domain.Transition) error
}
