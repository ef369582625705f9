package gcs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Uploader copies local artifacts into a GCS bucket and returns their
// public URLs.
type Uploader struct {
	client *storage.Client
	bucket string
	logger *slog.Logger
}

func NewUploader(ctx context.Context, bucket, credentialsFile string, logger *slog.Logger) (*Uploader, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &Uploader{
		client: client,
		bucket: bucket,
		logger: logger.With("component", "gcs"),
	}, nil
}

// Upload streams the file at localPath to destKey in the bucket.
func (u *Uploader) Upload(ctx context.Context, localPath, destKey string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	w := u.client.Bucket(u.bucket).Object(destKey).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", destKey, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload %s: %w", destKey, err)
	}

	// blob.public_url equivalents are flaky across SDKs; the canonical form
	// is stable.
	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, destKey)

	u.logger.Info("artifact uploaded", "key", destKey, "url", url)
	return url, nil
}

func (u *Uploader) Close() error {
	return u.client.Close()
}
