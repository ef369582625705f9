package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsreel/internal/config"
)

// APIError is a failure reported by the Instagram Graph API itself, as
// opposed to transport errors or timeouts.
type APIError struct {
	Op     string
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("instagram %s: %s", e.Op, e.Detail)
}

// TimeoutError is returned when a media container does not become ready
// within the configured maximum wait.
type TimeoutError struct {
	ContainerID string
	Elapsed     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for container %s to be ready", e.Elapsed, e.ContainerID)
}

// Instagram publishes reels through the Graph API: create a media container,
// wait for it to finish processing, then publish it.
type Instagram struct {
	httpClient   *http.Client
	baseURL      string
	userID       string
	accessToken  string
	pollInterval time.Duration
	maxWait      time.Duration
	logger       *slog.Logger
}

func NewInstagram(cfg config.InstagramConfig, logger *slog.Logger) *Instagram {
	return &Instagram{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userID:       cfg.UserID,
		accessToken:  cfg.AccessToken,
		pollInterval: cfg.PollInterval,
		maxWait:      cfg.MaxWait,
		logger:       logger.With("component", "instagram"),
	}
}

// PublishReel uploads the video at videoURL as a reel and returns the
// published post id.
func (c *Instagram) PublishReel(ctx context.Context, videoURL, caption string) (string, error) {
	if c.userID == "" || c.accessToken == "" {
		return "", &APIError{Op: "configure", Detail: "user id or access token not set"}
	}

	containerID, err := c.createContainer(ctx, videoURL, caption)
	if err != nil {
		return "", err
	}

	c.logger.Info("media container created", "container_id", containerID)

	if err := c.waitReady(ctx, containerID); err != nil {
		return "", err
	}

	return c.publishContainer(ctx, containerID)
}

func (c *Instagram) createContainer(ctx context.Context, videoURL, caption string) (string, error) {
	form := url.Values{
		"video_url":    {videoURL},
		"caption":      {caption},
		"media_type":   {"REELS"},
		"access_token": {c.accessToken},
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("%s/%s/media", c.baseURL, c.userID), form, &resp); err != nil {
		return "", &APIError{Op: "create container", Detail: err.Error()}
	}
	if resp.ID == "" {
		return "", &APIError{Op: "create container", Detail: "response carried no container id"}
	}
	return resp.ID, nil
}

// waitReady polls the container's status_code on a fixed interval until it
// reports FINISHED, reports ERROR, the maximum wait elapses, or ctx is
// cancelled.
func (c *Instagram) waitReady(ctx context.Context, containerID string) error {
	start := time.Now()
	deadline := start.Add(c.maxWait)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.containerStatus(ctx, containerID)
		if err != nil {
			return &APIError{Op: "poll status", Detail: err.Error()}
		}

		c.logger.Debug("container status",
			"container_id", containerID,
			"status", status,
			"elapsed", time.Since(start),
		)

		switch status {
		case "FINISHED":
			return nil
		case "ERROR":
			return &APIError{Op: "process media", Detail: "container processing failed"}
		}

		if !time.Now().Add(c.pollInterval).Before(deadline) {
			return &TimeoutError{ContainerID: containerID, Elapsed: time.Since(start)}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Instagram) containerStatus(ctx context.Context, containerID string) (string, error) {
	u := fmt.Sprintf("%s/%s?fields=status_code&access_token=%s", c.baseURL, containerID, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed struct {
		StatusCode string `json:"status_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return parsed.StatusCode, nil
}

func (c *Instagram) publishContainer(ctx context.Context, containerID string) (string, error) {
	form := url.Values{
		"creation_id":  {containerID},
		"access_token": {c.accessToken},
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("%s/%s/media_publish", c.baseURL, c.userID), form, &resp); err != nil {
		return "", &APIError{Op: "publish", Detail: err.Error()}
	}
	if resp.ID == "" {
		return "", &APIError{Op: "publish", Detail: "response carried no post id"}
	}

	c.logger.Info("reel published", "post_id", resp.ID)
	return resp.ID, nil
}

func (c *Instagram) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
