package publish

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"newsreel/internal/config"
)

// fakeGraphAPI mimics the three Graph API calls reel publishing makes:
// container creation, status polling, and publish.
type fakeGraphAPI struct {
	mu sync.Mutex

	statusSequence []string // status_code returned per poll, last repeats
	polls          int
	createForm     map[string]string
	publishForm    map[string]string
}

func (f *fakeGraphAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /ig-user/media", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		r.ParseForm()
		f.createForm = map[string]string{
			"video_url":  r.PostFormValue("video_url"),
			"caption":    r.PostFormValue("caption"),
			"media_type": r.PostFormValue("media_type"),
		}
		fmt.Fprint(w, `{"id": "container-1"}`)
	})

	mux.HandleFunc("GET /container-1", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		idx := f.polls
		if idx >= len(f.statusSequence) {
			idx = len(f.statusSequence) - 1
		}
		f.polls++
		fmt.Fprintf(w, `{"status_code": %q}`, f.statusSequence[idx])
	})

	mux.HandleFunc("POST /ig-user/media_publish", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		r.ParseForm()
		f.publishForm = map[string]string{
			"creation_id": r.PostFormValue("creation_id"),
		}
		fmt.Fprint(w, `{"id": "post-9000"}`)
	})

	return mux
}

type InstagramTestSuite struct {
	suite.Suite

	api    *fakeGraphAPI
	server *httptest.Server
}

func (s *InstagramTestSuite) SetupTest() {
	s.api = &fakeGraphAPI{}
	s.server = httptest.NewServer(s.api.handler())
}

func (s *InstagramTestSuite) TearDownTest() {
	s.server.Close()
}

func TestInstagramTestSuite(t *testing.T) {
	suite.Run(t, new(InstagramTestSuite))
}

func (s *InstagramTestSuite) newClient(maxWait time.Duration) *Instagram {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewInstagram(config.InstagramConfig{
		UserID:       "ig-user",
		AccessToken:  "token",
		BaseURL:      s.server.URL,
		Timeout:      5 * time.Second,
		PollInterval: 10 * time.Millisecond,
		MaxWait:      maxWait,
	}, logger)
}

func (s *InstagramTestSuite) TestPublishReel() {
	s.api.statusSequence = []string{"IN_PROGRESS", "IN_PROGRESS", "FINISHED"}
	client := s.newClient(time.Second)

	postID, err := client.PublishReel(context.Background(), "https://example.com/v.mp4", "caption text")

	s.Require().NoError(err)
	s.Equal("post-9000", postID)
	s.Equal("https://example.com/v.mp4", s.api.createForm["video_url"])
	s.Equal("caption text", s.api.createForm["caption"])
	s.Equal("REELS", s.api.createForm["media_type"])
	s.Equal("container-1", s.api.publishForm["creation_id"])
	s.GreaterOrEqual(s.api.polls, 3)
}

func (s *InstagramTestSuite) TestProcessingError() {
	s.api.statusSequence = []string{"IN_PROGRESS", "ERROR"}
	client := s.newClient(time.Second)

	_, err := client.PublishReel(context.Background(), "https://example.com/v.mp4", "")

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("process media", apiErr.Op)
	s.Nil(s.api.publishForm)
}

func (s *InstagramTestSuite) TestReadinessTimeout() {
	s.api.statusSequence = []string{"IN_PROGRESS"}
	client := s.newClient(50 * time.Millisecond)

	_, err := client.PublishReel(context.Background(), "https://example.com/v.mp4", "")

	var timeoutErr *TimeoutError
	s.Require().ErrorAs(err, &timeoutErr)
	s.Equal("container-1", timeoutErr.ContainerID)
	s.Nil(s.api.publishForm)
}

func (s *InstagramTestSuite) TestContextCancelledWhilePolling() {
	s.api.statusSequence = []string{"IN_PROGRESS"}

	// Poll interval longer than the context timeout: the first poll answers
	// immediately, then cancellation fires while waiting for the next tick.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := NewInstagram(config.InstagramConfig{
		UserID:       "ig-user",
		AccessToken:  "token",
		BaseURL:      s.server.URL,
		Timeout:      5 * time.Second,
		PollInterval: time.Second,
		MaxWait:      time.Minute,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.PublishReel(ctx, "https://example.com/v.mp4", "")

	s.Require().Error(err)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *InstagramTestSuite) TestMissingCredentials() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := NewInstagram(config.InstagramConfig{BaseURL: s.server.URL}, logger)

	_, err := client.PublishReel(context.Background(), "https://example.com/v.mp4", "")

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("configure", apiErr.Op)
}
