package sessions

import "time"

// Session is one browser's in-memory state between requests.
type Session struct {
	ID          string
	ResumeText  string
	Archive     []byte
	ArchiveName string
	UpdatedAt   time.Time
}

// HasArchive reports whether a generated archive is ready for download.
func (s Session) HasArchive() bool {
	return len(s.Archive) > 0
}
