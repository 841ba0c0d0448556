package portfolio

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"prism-backend/internal/prompt"
	"prism-backend/internal/shared/server/middleware"
	"prism-backend/internal/shared/server/respond"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	downloadPath  = "/api/v1/site/download"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	// GenerateLimit guards the generate route; nil disables it.
	GenerateLimit gin.HandlerFunc
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, generateLimit gin.HandlerFunc) *Handler {
	return &Handler{Svc: svc, GenerateLimit: generateLimit}
}

// RegisterRoutes attaches portfolio routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	generate := []gin.HandlerFunc{h.generate}
	if h.GenerateLimit != nil {
		generate = append([]gin.HandlerFunc{h.GenerateLimit}, generate...)
	}
	rg.POST("/resume", h.upload)
	rg.POST("/site", generate...)
	rg.GET("/site/download", h.download)
	rg.GET("/session", h.session)
}

func (h *Handler) upload(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	res, err := h.Svc.Upload(c.Request.Context(), sessionID, fileHeader.Filename, data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	message, detail := UploadMessages(res.Characters)
	respond.OK(c, UploadResponse{
		Characters: res.Characters,
		Message:    message,
		Detail:     detail,
	})
}

func (h *Handler) generate(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var style prompt.StyleParameters
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&style); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
			return
		}
	}

	res, err := h.Svc.Generate(c.Request.Context(), sessionID, style)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toGenerateResponse(res))
}

func (h *Handler) download(c *gin.Context) {
	archive, err := h.Svc.Download(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.Attachment(c, archive.Name, "application/zip", archive.Data)
}

func (h *Handler) session(c *gin.Context) {
	status, err := h.Svc.Status(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toSessionResponse(status))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrExtraction):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", ExtractionMessage(err), nil)
	case errors.Is(err, ErrMissingCredential):
		respond.Error(c, http.StatusServiceUnavailable, "missing_credential", MissingCredentialMessage(h.Svc.CredentialEnv), nil)
	case errors.Is(err, ErrNoResumeText):
		respond.Error(c, http.StatusConflict, "resume_required", MsgNoResume, nil)
	case errors.Is(err, ErrParseFailed):
		respond.Error(c, http.StatusBadGateway, "parse_failed", MsgParseFailed, nil)
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", GenerationFailedMessage(err), nil)
	case errors.Is(err, ErrNoArchive):
		respond.Error(c, http.StatusNotFound, "not_found", MsgNoArchive, nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
	}
}
