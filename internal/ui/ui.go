// Package ui serves the single-page front end.
package ui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"prism-backend/internal/portfolio"
	"prism-backend/internal/prompt"
	"prism-backend/internal/shared/server/middleware"
	"prism-backend/internal/shared/server/respond"
	"prism-backend/internal/shared/telemetry"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	DefaultTitle  string
	DefaultAccent string
	Ethoses       []string
	APIBase       string
	DownloadURL   string
	ArchiveReady  bool
}

// Handler renders the page. The download link starts visible when the
// caller's session already holds an archive.
type Handler struct {
	Svc     *portfolio.Service
	APIBase string
}

// NewHandler constructs a Handler.
func NewHandler(svc *portfolio.Service, apiBase string) *Handler {
	return &Handler{Svc: svc, APIBase: apiBase}
}

// RegisterRoutes attaches the page route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
}

func (h *Handler) index(c *gin.Context) {
	data := pageData{
		DefaultTitle:  prompt.DefaultTitle,
		DefaultAccent: prompt.DefaultAccentColor,
		Ethoses:       prompt.Ethoses,
		APIBase:       h.APIBase,
		DownloadURL:   h.APIBase + "/site/download",
	}
	if h.Svc != nil {
		if status, err := h.Svc.Status(c.Request.Context(), middleware.SessionIDFromContext(c)); err == nil {
			data.ArchiveReady = status.ArchiveReady
		}
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		telemetry.Error("ui.render_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
