package portfolio

// UploadResponse is returned after a resume is scanned.
type UploadResponse struct {
	Characters int    `json:"characters"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
}

// GenerateResponse is returned after a site is packaged.
type GenerateResponse struct {
	ArchiveName string   `json:"archiveName"`
	SizeBytes   int      `json:"sizeBytes"`
	Files       []string `json:"files"`
	DownloadURL string   `json:"downloadUrl"`
	Message     string   `json:"message"`
}

// SessionResponse reports what the caller's session holds.
type SessionResponse struct {
	ResumeCharacters int    `json:"resumeCharacters"`
	ArchiveReady     bool   `json:"archiveReady"`
	ArchiveName      string `json:"archiveName,omitempty"`
}

func toGenerateResponse(r GenerateResult) GenerateResponse {
	return GenerateResponse{
		ArchiveName: r.ArchiveName,
		SizeBytes:   r.SizeBytes,
		Files:       r.Files,
		DownloadURL: downloadPath,
		Message:     MsgComplete,
	}
}

func toSessionResponse(s Status) SessionResponse {
	return SessionResponse{
		ResumeCharacters: s.ResumeCharacters,
		ArchiveReady:     s.ArchiveReady,
		ArchiveName:      s.ArchiveName,
	}
}
