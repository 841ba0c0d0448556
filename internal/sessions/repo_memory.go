package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores sessions in memory and is safe for concurrent use.
// Sessions idle for longer than ttl are dropped on the next access.
type MemoryRepo struct {
	mu   sync.Mutex
	byID map[string]Session
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo. A non-positive ttl disables eviction.
func NewMemoryRepo(ttl time.Duration) *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]Session),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns a copy of the session state.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	if id == "" {
		return Session{}, ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	s, ok := r.byID[id]
	if !ok {
		return Session{ID: id}, nil
	}
	return s, nil
}

// SaveResume stores freshly extracted resume text.
func (r *MemoryRepo) SaveResume(ctx context.Context, id, text string) error {
	return r.update(ctx, id, func(s *Session) {
		s.ResumeText = text
	})
}

// SaveArchive stores the generated archive, replacing any previous one.
func (r *MemoryRepo) SaveArchive(ctx context.Context, id string, archive []byte, name string) error {
	stored := append([]byte(nil), archive...)
	return r.update(ctx, id, func(s *Session) {
		s.Archive = stored
		s.ArchiveName = name
	})
}

// Len reports the number of live sessions.
func (r *MemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	return len(r.byID)
}

func (r *MemoryRepo) update(ctx context.Context, id string, fn func(*Session)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	s, ok := r.byID[id]
	if !ok {
		s = Session{ID: id}
	}
	fn(&s)
	s.UpdatedAt = r.now().UTC()
	r.byID[id] = s
	return nil
}

func (r *MemoryRepo) evictLocked() {
	if r.ttl <= 0 {
		return
	}
	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.byID {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.byID, id)
		}
	}
}

var _ Repo = (*MemoryRepo)(nil)
