package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Composer renders the final reel with ffmpeg: the background video scaled to
// the target resolution, a dimmed full-frame overlay, the caption burned in
// from a generated subtitle track, and the music as the audio track.
type Composer struct {
	fontPath       string
	resolution     string
	overlayOpacity float64
	fontSize       int
	wordsPerLine   int
	logger         *slog.Logger
}

func NewComposer(fontPath, resolution string, logger *slog.Logger) *Composer {
	return &Composer{
		fontPath:       fontPath,
		resolution:     resolution,
		overlayOpacity: 0.7,
		fontSize:       12,
		wordsPerLine:   8,
		logger:         logger.With("component", "composer"),
	}
}

// Compose writes the rendered video to outputPath.
func (c *Composer) Compose(ctx context.Context, videoPath, musicPath, caption, outputPath string) error {
	width, height, err := parseResolution(c.resolution)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	srtPath := outputPath + ".srt"
	if err := writeSRT(srtPath, caption, c.wordsPerLine); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	defer os.Remove(srtPath)

	drawbox := fmt.Sprintf("drawbox=x=0:y=0:w=%d:h=%d:color=black@%.1f:t=fill", width, height, c.overlayOpacity)
	subtitles := fmt.Sprintf(
		"subtitles=%s:force_style='FontName=Arial,FontSize=%d,PrimaryColour=&HFFFFFF,Alignment=10'",
		srtPath, c.fontSize,
	)
	if c.fontPath != "" {
		subtitles += ":fontsdir=" + filepath.Dir(c.fontPath)
	}
	filterComplex := fmt.Sprintf("[0:v]scale=%d:%d,format=yuv420p,%s,%s[v]", width, height, drawbox, subtitles)

	args := []string{
		"-y",
		"-i", videoPath,
		"-i", musicPath,
		"-filter_complex", filterComplex,
		"-map", "[v]",
		"-map", "1:a",
		"-shortest",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-b:a", "192k",
		"-pix_fmt", "yuv420p",
		outputPath,
	}

	c.logger.Debug("running ffmpeg", "output", outputPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, tail(string(output), 500))
	}
	return nil
}

func parseResolution(resolution string) (int, int, error) {
	parts := strings.SplitN(resolution, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid resolution %q", resolution)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resolution %q", resolution)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resolution %q", resolution)
	}
	return width, height, nil
}

// writeSRT generates a single-cue SubRip file holding the whole caption.
// The cue outlasts any reel; ffmpeg cuts it to the video length.
func writeSRT(path, caption string, wordsPerLine int) error {
	content := fmt.Sprintf("1\n00:00:00,000 --> 01:00:00,000\n%s\n", wrapWords(caption, wordsPerLine))
	return os.WriteFile(path, []byte(content), 0o644)
}

func wrapWords(text string, wordsPerLine int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	for i := 0; i < len(words); i += wordsPerLine {
		end := i + wordsPerLine
		if end > len(words) {
			end = len(words)
		}
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return strings.Join(lines, "\n")
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
