package portfolio

import "fmt"

// User-facing status lines shown by the page and the CLI.
const (
	MsgScanned          = "✨ Blueprint scanned successfully!"
	MsgNoText           = "No readable text found in this PDF."
	MsgNoResume         = "Please upload a resume blueprint first."
	MsgParseFailed      = "Could not parse AI response. Try again."
	MsgComplete         = "Digital Architecture Complete!"
	MsgNoArchive        = "No package generated yet."
	MsgRateLimited      = "Too many generations. Please wait a moment."
	msgMissingKeyFormat = "API Key missing. Set the %s environment variable."
)

// DetectedMessage reports how much text came out of the upload.
func DetectedMessage(chars int) string {
	return fmt.Sprintf("Detected %d characters of professional data.", chars)
}

// UploadMessages returns the banner and detail line for an upload. A PDF
// without text gets no success banner.
func UploadMessages(chars int) (message, detail string) {
	if chars == 0 {
		return MsgNoText, ""
	}
	return MsgScanned, DetectedMessage(chars)
}

// ExtractionMessage reports an unreadable upload.
func ExtractionMessage(err error) string {
	return "Error reading PDF: " + Cause(err)
}

// GenerationFailedMessage reports a failed model call.
func GenerationFailedMessage(err error) string {
	return "Generation failed: " + Cause(err)
}

// MissingCredentialMessage names the variable the operator must set.
func MissingCredentialMessage(envName string) string {
	if envName == "" {
		envName = "GEMINI_API_KEY"
	}
	return fmt.Sprintf(msgMissingKeyFormat, envName)
}
