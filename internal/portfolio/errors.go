package portfolio

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrExtraction        = errors.New("error reading pdf")
	ErrMissingCredential = errors.New("api key missing")
	ErrNoResumeText      = errors.New("no resume text")
	ErrGenerationFailed  = errors.New("generation failed")
	ErrParseFailed       = errors.New("could not parse ai response")
	ErrNoArchive         = errors.New("no archive generated")
)

// stepError ties a pipeline failure kind to its underlying cause.
type stepError struct {
	kind  error
	cause error
}

func (e *stepError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *stepError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func wrapStep(kind, cause error) error {
	return &stepError{kind: kind, cause: cause}
}

// Cause returns the underlying message of a pipeline failure, or err's own message.
func Cause(err error) string {
	var se *stepError
	if errors.As(err, &se) {
		return se.cause.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
