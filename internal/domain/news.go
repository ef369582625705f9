package domain

import (
	"fmt"
	"time"
)

// NewsRecord is one news item tracked through the pipeline. Fields owned by
// a later stage stay nil until that stage has succeeded at least once.
type NewsRecord struct {
	ID          int64     `db:"id"`
	Headline    string    `db:"headline"`
	Article     string    `db:"article"`
	Domain      string    `db:"domain"` // free-form tag, not an enum
	Source      string    `db:"source"`
	PublishedAt time.Time `db:"published_at"`

	Status    Status     `db:"status"`
	Relevancy *int       `db:"relevancy"`
	Sentiment *Sentiment `db:"sentiment"`

	VideoTitle     *string       `db:"video_title"`
	Hashtags       []string      `db:"hashtags"`
	Caption        *string       `db:"caption"`
	Script         []ScriptSlide `db:"-"`
	ImageURLs      []string      `db:"image_urls"`
	VoiceoverURL   *string       `db:"voiceover_url"`
	VideoURL       *string       `db:"video_url"`
	VideoLocalPath *string       `db:"video_local_path"`
	InstagramID    *string       `db:"instagram_id"`

	// RejectReason holds the INVALID_ARTICLE reason. Rejection is not an
	// error, so the error fields stay unset for rejected records.
	RejectReason *string `db:"reject_reason"`

	ErrorType    *ErrorType `db:"error_type"`
	ErrorMessage *string    `db:"error_message"`
	ErrorAt      *time.Time `db:"error_at"`

	ClaimedBy *string    `db:"claimed_by"`
	ClaimedAt *time.Time `db:"claimed_at"`

	CreatedAt time.Time `db:"created_at"`
	ModAt     time.Time `db:"mod_at"`
}

// ScriptSlide is one slide of the generated video script.
type ScriptSlide struct {
	Slide      int    `json:"slide"`
	Text       string `json:"text"`
	ImageQuery string `json:"image_query"`
	StartMS    int    `json:"start_ms"`
	EndMS      int    `json:"end_ms"`
}

// ValidateScript checks the structural invariants of a slide sequence:
// 1-based strictly increasing indices, start_ms < end_ms per slide, and
// non-overlapping, non-decreasing time ranges across the sequence.
func ValidateScript(slides []ScriptSlide) error {
	prevIndex := 0
	prevEnd := 0
	for i, slide := range slides {
		if slide.Slide <= prevIndex {
			return fmt.Errorf("slide %d: index %d not strictly increasing", i, slide.Slide)
		}
		if slide.StartMS >= slide.EndMS {
			return fmt.Errorf("slide %d: start_ms %d >= end_ms %d", slide.Slide, slide.StartMS, slide.EndMS)
		}
		if slide.StartMS < prevEnd {
			return fmt.Errorf("slide %d: start_ms %d overlaps previous end_ms %d", slide.Slide, slide.StartMS, prevEnd)
		}
		prevIndex = slide.Slide
		prevEnd = slide.EndMS
	}
	return nil
}
