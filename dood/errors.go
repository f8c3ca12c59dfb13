package dood

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two non-HTTP failure modes of the pipeline.
var (
	// ErrEmptyEmbedURL is returned before any network activity when the input URL is empty.
	ErrEmptyEmbedURL = errors.New("embed URL is empty")

	// ErrEmptyResponse is returned when the pass_md5 endpoint yields a blank body.
	ErrEmptyResponse = errors.New("pass_md5 endpoint returned an empty body")
)

// StatusError indicates a non-2xx HTTP status from either fetch of the pipeline.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// ExtractionError indicates that a required pattern produced no match in fetched content.
// Field names the missing value ("pass_md5" or "token"), SourceURL the page it was expected in.
type ExtractionError struct {
	Field     string
	SourceURL string
}

func (e *ExtractionError) Error() string {
	if e == nil {
		return "extraction error"
	}
	return fmt.Sprintf("no %s match in content from %s", e.Field, e.SourceURL)
}
