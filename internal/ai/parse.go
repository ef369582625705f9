package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"newsreel/internal/domain"
)

// ErrNoResponse indicates the model returned nothing usable after retries.
var ErrNoResponse = errors.New("no response from model")

// DecodeError carries the raw model output when it could not be decoded,
// so operators can diagnose malformed responses from the record's error
// message alone.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode model response: %v (raw: %s)", e.Err, truncate(e.Raw, 500))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// OutputError indicates the response decoded cleanly but violated the
// expected shape. It is tagged separately from call failures.
type OutputError struct {
	Missing []string
	Reason  string
}

func (e *OutputError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("script payload missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	return "invalid script payload: " + e.Reason
}

// Verdict is the structured judgment returned by content validation.
type Verdict struct {
	Valid          string `json:"valid"`
	RelatedToIndia string `json:"related_to_india"`
	Reason         string `json:"reason"`
	Relevancy      int    `json:"relevancy"`
}

// ScriptPayload is the validated output of script generation.
type ScriptPayload struct {
	Sentiment  domain.Sentiment
	VideoTitle string
	Hashtags   []string
	Caption    string
	Script     []domain.ScriptSlide
}

func parseVerdict(text string) (*Verdict, error) {
	cleaned := stripFences(text)

	var verdict Verdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return nil, &DecodeError{Raw: text, Err: err}
	}
	return &verdict, nil
}

func parseScriptPayload(text string) (*ScriptPayload, error) {
	cleaned := stripFences(text)

	var raw struct {
		Sentiment  *string              `json:"sentiment"`
		VideoTitle *string              `json:"video_title"`
		Hashtags   []string             `json:"hashtags"`
		Caption    *string              `json:"caption"`
		Script     []domain.ScriptSlide `json:"script"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &DecodeError{Raw: text, Err: err}
	}

	var missing []string
	if raw.Sentiment == nil {
		missing = append(missing, "sentiment")
	}
	if raw.VideoTitle == nil {
		missing = append(missing, "video_title")
	}
	if raw.Hashtags == nil {
		missing = append(missing, "hashtags")
	}
	if raw.Caption == nil {
		missing = append(missing, "caption")
	}
	if len(missing) > 0 {
		return nil, &OutputError{Missing: missing}
	}

	sentiment := domain.Sentiment(strings.ToLower(*raw.Sentiment))
	if !sentiment.Valid() {
		return nil, &OutputError{Reason: fmt.Sprintf("unknown sentiment %q", *raw.Sentiment)}
	}

	// The slide list is advisory, but when present it must be well-formed.
	if len(raw.Script) > 0 {
		if err := domain.ValidateScript(raw.Script); err != nil {
			return nil, &OutputError{Reason: err.Error()}
		}
	}

	return &ScriptPayload{
		Sentiment:  sentiment,
		VideoTitle: *raw.VideoTitle,
		Hashtags:   raw.Hashtags,
		Caption:    *raw.Caption,
		Script:     raw.Script,
	}, nil
}

// stripFences removes a Markdown code fence wrapping the model output.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimSpace(strings.TrimPrefix(text, "```json"))
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimSpace(strings.TrimPrefix(text, "```"))
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(strings.TrimSuffix(text, "```"))
	}
	return text
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
