package site

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

const (
	stylesheetLink = `<link rel="stylesheet" href="styles.css">`
	scriptTag      = `<script src="script.js"></script>`
)

// InjectReferences links styles.css before </head> and script.js before </body>
// when the markup lacks them. Missing markers leave the markup unchanged.
func InjectReferences(s Site) string {
	html := s.HTML
	if s.CSS != "" && !strings.Contains(html, StylesFile) {
		html = strings.ReplaceAll(html, "</head>", stylesheetLink+"</head>")
	}
	if s.JS != "" && !strings.Contains(html, ScriptFile) {
		html = strings.ReplaceAll(html, "</body>", scriptTag+"</body>")
	}
	return html
}

// Package zips the site with deflate. styles.css and script.js are only
// written when they have content.
func Package(s Site) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name    string
		content string
	}{
		{IndexFile, InjectReferences(s)},
		{StylesFile, s.CSS},
		{ScriptFile, s.JS},
	}
	for _, e := range entries {
		if e.name != IndexFile && e.content == "" {
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("zip create %s: %w", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			return nil, fmt.Errorf("zip write %s: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip close: %w", err)
	}
	return buf.Bytes(), nil
}

// Files lists the archive entries Package writes for s.
func Files(s Site) []string {
	files := []string{IndexFile}
	if s.CSS != "" {
		files = append(files, StylesFile)
	}
	if s.JS != "" {
		files = append(files, ScriptFile)
	}
	return files
}

// ArchiveName names the download after the portfolio title.
func ArchiveName(title string) string {
	return "Prism_Portfolio_" + strings.ReplaceAll(title, " ", "_") + ".zip"
}
