package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"prism-backend/internal/extract"
	"prism-backend/internal/llm"
	"prism-backend/internal/prompt"
	"prism-backend/internal/sessions"
	"prism-backend/internal/shared/metrics"
	"prism-backend/internal/shared/telemetry"
	"prism-backend/internal/site"
)

// Service runs the resume-to-site pipeline against per-session state.
type Service struct {
	Sessions sessions.Repo
	LLM      llm.Client
	// APIKeySet is false when no provider credential was configured at startup.
	APIKeySet bool
	// CredentialEnv names the variable holding the credential, for messages.
	CredentialEnv  string
	MaxResumeChars int
}

// UploadResult describes a successful extraction.
type UploadResult struct {
	Characters int
}

// GenerateResult describes the stored archive.
type GenerateResult struct {
	ArchiveName string
	SizeBytes   int
	Files       []string
}

// Archive is a downloadable package.
type Archive struct {
	Name string
	Data []byte
}

// Status summarizes a session for the page.
type Status struct {
	ResumeCharacters int
	ArchiveReady     bool
	ArchiveName      string
}

// Upload extracts resume text from a PDF and stores it in the session.
// On failure the stored text is cleared so generation is blocked.
func (s *Service) Upload(ctx context.Context, sessionID, fileName string, data []byte) (UploadResult, error) {
	if sessionID == "" {
		return UploadResult{}, ErrInvalidInput
	}

	text, err := extract.FromBytes(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return UploadResult{}, ctxErr
		}
		metrics.IncExtractionFailed()
		telemetry.Error("resume.extract_failed", map[string]any{
			"session_id": sessionID,
			"file_name":  fileName,
			"size_bytes": len(data),
			"error":      err.Error(),
		})
		if saveErr := s.Sessions.SaveResume(ctx, sessionID, ""); saveErr != nil {
			return UploadResult{}, saveErr
		}
		return UploadResult{}, wrapStep(ErrExtraction, err)
	}

	if err := s.Sessions.SaveResume(ctx, sessionID, text); err != nil {
		return UploadResult{}, err
	}
	chars := utf8.RuneCountInString(text)
	telemetry.Info("resume.extracted", map[string]any{
		"session_id": sessionID,
		"file_name":  fileName,
		"characters": chars,
	})
	return UploadResult{Characters: chars}, nil
}

// Generate builds the prompt, calls the model once, parses the answer and
// stores the packaged site. Guards run before any external call.
func (s *Service) Generate(ctx context.Context, sessionID string, style prompt.StyleParameters) (GenerateResult, error) {
	if sessionID == "" {
		return GenerateResult{}, ErrInvalidInput
	}
	if !s.APIKeySet || s.LLM == nil {
		return GenerateResult{}, ErrMissingCredential
	}

	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return GenerateResult{}, err
	}
	if sess.ResumeText == "" {
		return GenerateResult{}, ErrNoResumeText
	}

	style, err = style.Normalize()
	if err != nil {
		return GenerateResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	metrics.IncGenerationStarted()
	start := time.Now()
	telemetry.Info("generation.started", map[string]any{
		"session_id": sessionID,
		"ethos":      style.Ethos,
	})

	result, err := s.run(ctx, sess.ResumeText, style)
	metrics.ObserveGenerationDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("generation.failed", map[string]any{
			"session_id":  sessionID,
			"parse_error": errors.Is(err, ErrParseFailed),
			"error":       err.Error(),
		})
		return GenerateResult{}, err
	}

	if err := s.Sessions.SaveArchive(ctx, sessionID, result.archive, result.ArchiveName); err != nil {
		return GenerateResult{}, err
	}
	metrics.IncGenerationCompleted()
	telemetry.Info("generation.completed", map[string]any{
		"session_id":  sessionID,
		"size_bytes":  result.SizeBytes,
		"files":       result.Files,
		"duration_ms": metrics.SinceMillis(start),
	})
	return result.GenerateResult, nil
}

type runResult struct {
	GenerateResult
	archive []byte
}

func (s *Service) run(ctx context.Context, resume string, style prompt.StyleParameters) (runResult, error) {
	instruction := prompt.BuildWithLimit(resume, style, s.MaxResumeChars)

	raw, err := s.LLM.Complete(ctx, instruction)
	if err != nil {
		return runResult{}, wrapStep(ErrGenerationFailed, err)
	}

	generated, err := site.Parse(raw)
	if err != nil {
		return runResult{}, wrapStep(ErrParseFailed, err)
	}

	archive, err := site.Package(generated)
	if err != nil {
		return runResult{}, wrapStep(ErrGenerationFailed, err)
	}

	return runResult{
		GenerateResult: GenerateResult{
			ArchiveName: site.ArchiveName(style.Title),
			SizeBytes:   len(archive),
			Files:       site.Files(generated),
		},
		archive: archive,
	}, nil
}

// Download returns the session's latest archive.
func (s *Service) Download(ctx context.Context, sessionID string) (Archive, error) {
	if sessionID == "" {
		return Archive{}, ErrInvalidInput
	}
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return Archive{}, err
	}
	if !sess.HasArchive() {
		return Archive{}, ErrNoArchive
	}
	return Archive{Name: sess.ArchiveName, Data: sess.Archive}, nil
}

// Status reports what the session currently holds.
func (s *Service) Status(ctx context.Context, sessionID string) (Status, error) {
	if sessionID == "" {
		return Status{}, ErrInvalidInput
	}
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}
	return Status{
		ResumeCharacters: utf8.RuneCountInString(sess.ResumeText),
		ArchiveReady:     sess.HasArchive(),
		ArchiveName:      sess.ArchiveName,
	}, nil
}
