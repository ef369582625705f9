package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"newsreel/internal/domain"
)

// AssetLibrary resolves background video and music assets keyed by
// (domain, sentiment) from a directory layout of
// <videoDir>/<domain>/<sentiment>/<sentiment>_<domain>.mp4 and
// <musicDir>/<sentiment>.mp3.
type AssetLibrary struct {
	videoDir string
	musicDir string
}

func NewAssetLibrary(videoDir, musicDir string) *AssetLibrary {
	return &AssetLibrary{videoDir: videoDir, musicDir: musicDir}
}

// BackgroundVideo returns the exact asset for the pair, falling back to any
// .mp4 in the same bucket when the exact file is missing.
func (l *AssetLibrary) BackgroundVideo(dom string, sentiment domain.Sentiment) (string, error) {
	dom = strings.ToLower(dom)
	sent := strings.ToLower(string(sentiment))

	exact := filepath.Join(l.videoDir, dom, sent, fmt.Sprintf("%s_%s.mp4", sent, dom))
	if _, err := os.Stat(exact); err == nil {
		return exact, nil
	}

	bucket := filepath.Join(l.videoDir, dom, sent)
	entries, err := os.ReadDir(bucket)
	if err != nil {
		return "", fmt.Errorf("no background video found for %s/%s", dom, sent)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".mp4") {
			return filepath.Join(bucket, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no background video found for %s/%s", dom, sent)
}

// BackgroundMusic returns the music track for the sentiment.
func (l *AssetLibrary) BackgroundMusic(sentiment domain.Sentiment) (string, error) {
	sent := strings.ToLower(string(sentiment))

	path := filepath.Join(l.musicDir, sent+".mp3")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("no background music found for sentiment %s", sent)
	}
	return path, nil
}

// SafeFilename converts a title into a filesystem-safe base name.
func SafeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune(' ')
		default:
			b.WriteRune('_')
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
