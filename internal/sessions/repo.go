package sessions

import (
	"context"
	"errors"
)

// ErrInvalidInput indicates a missing session id.
var ErrInvalidInput = errors.New("invalid input")

// Repo defines the session state operations used by the portfolio pipeline.
type Repo interface {
	// Get returns the session, or an empty one carrying the id when none exists.
	Get(ctx context.Context, id string) (Session, error)
	// SaveResume replaces the extracted resume text.
	SaveResume(ctx context.Context, id, text string) error
	// SaveArchive replaces the generated archive and its download name.
	SaveArchive(ctx context.Context, id string, archive []byte, name string) error
}
