package resume

import (
	"errors"
	"fmt"
)

// User-facing messages. The extraction path collapses every cause into one of these.
const (
	MsgUnsupportedType  = "Unsupported file type. Please upload a PDF, DOCX, or TXT file."
	MsgReadFailed       = "Failed to read the file."
	MsgExtractionFailed = "Failed to parse resume. The document might be in an unsupported format or corrupted."
)

var (
	ErrUnsupportedType  = errors.New("unsupported media type")
	ErrReadFailed       = errors.New("failed to read file")
	ErrExtractionFailed = errors.New("failed to parse resume")
)

// Stage names the step of an extraction that failed. Logged only.
type Stage string

const (
	StagePayload       Stage = "payload"
	StageTransport     Stage = "transport"
	StageEmptyResponse Stage = "empty_response"
	StageSchema        Stage = "schema"
	StageDecode        Stage = "decode"
)

// ExtractionError keeps the internal cause of a failed extraction.
// It matches ErrExtractionFailed via errors.Is.
type ExtractionError struct {
	Stage Stage
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract resume: %s: %v", e.Stage, e.Cause)
}

func (e *ExtractionError) Unwrap() []error {
	return []error{ErrExtractionFailed, e.Cause}
}

// UserMessage maps an error from this package to the single message shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return MsgUnsupportedType
	case errors.Is(err, ErrReadFailed):
		return MsgReadFailed
	default:
		return MsgExtractionFailed
	}
}
