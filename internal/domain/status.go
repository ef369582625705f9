package domain

// Status represents the pipeline lifecycle of a news record.
type Status string

const (
	StatusFetched         Status = "FETCHED"
	StatusValidArticle    Status = "VALID_ARTICLE"
	StatusInvalidArticle  Status = "INVALID_ARTICLE"
	StatusScriptGenerated Status = "SCRIPT_GENERATED"
	StatusImagesCreated   Status = "IMAGES_CREATED"
	StatusVideoGenerated  Status = "VIDEO_GENERATED"
	StatusPosted          Status = "POSTED"
	StatusErrorFetch      Status = "ERROR_FETCH"
	StatusErrorValidate   Status = "ERROR_VALIDATE"
	StatusErrorScript     Status = "ERROR_SCRIPT"
	StatusErrorImages     Status = "ERROR_IMAGES"
	StatusErrorVideo      Status = "ERROR_VIDEO"
	StatusErrorPost       Status = "ERROR_POST"
)

// AllStatuses lists every status the store is allowed to persist.
// IMAGES_CREATED and ERROR_IMAGES are part of the published vocabulary
// (dashboards key on it) even though no stage currently produces them.
var AllStatuses = []Status{
	StatusFetched,
	StatusValidArticle,
	StatusInvalidArticle,
	StatusScriptGenerated,
	StatusImagesCreated,
	StatusVideoGenerated,
	StatusPosted,
	StatusErrorFetch,
	StatusErrorValidate,
	StatusErrorScript,
	StatusErrorImages,
	StatusErrorVideo,
	StatusErrorPost,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(AllStatuses))
	for _, status := range AllStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// Valid reports whether s is a member of the defined status set.
func (s Status) Valid() bool {
	_, ok := statusSet[s]
	return ok
}

// IsError reports whether s is one of the ERROR_* statuses.
func (s Status) IsError() bool {
	switch s {
	case StatusErrorFetch, StatusErrorValidate, StatusErrorScript,
		StatusErrorImages, StatusErrorVideo, StatusErrorPost:
		return true
	}
	return false
}

// Terminal reports whether the pipeline never moves s forward on its own.
// Non-retried ERROR_* statuses are terminal too, but that is per-stage
// policy carried in configuration, not a property of the status itself.
func (s Status) Terminal() bool {
	return s == StatusPosted || s == StatusInvalidArticle
}

// ErrorType tags the category of a stage failure so operators can tell
// categories apart without parsing free-text messages.
type ErrorType string

const (
	ErrorTypeFetch          ErrorType = "FETCH_ERROR"
	ErrorTypeValidationCall ErrorType = "VALIDATION_CALL_ERROR"
	ErrorTypeScriptCall     ErrorType = "SCRIPT_CALL_ERROR"
	ErrorTypeScriptOutput   ErrorType = "SCRIPT_OUTPUT_ERROR"
	ErrorTypeVideo          ErrorType = "VIDEO_GENERATION_ERROR"
	ErrorTypePublishAPI     ErrorType = "PUBLISH_API_ERROR"
	ErrorTypePublishTimeout ErrorType = "PUBLISH_TIMEOUT"
	ErrorTypeUnexpected     ErrorType = "UNEXPECTED_ERROR"
)

// Sentiment classifies the emotional tone assigned by script generation.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is a known sentiment.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}
