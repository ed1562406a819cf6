package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/financebook/backend/internal/infrastructure/archive"
)

// ArchiveHandler exposes JSON export and import of the managed tables.
// Files live under a configured archive directory; client-supplied names
// are stripped to their base name so requests cannot escape it.
type ArchiveHandler struct {
	BaseHandler
	exporter *archive.Exporter
	importer *archive.Importer
	dir      string
}

// NewArchiveHandler creates an archive handler rooted at dir.
func NewArchiveHandler(exporter *archive.Exporter, importer *archive.Importer, dir string) *ArchiveHandler {
	return &ArchiveHandler{exporter: exporter, importer: importer, dir: dir}
}

// RegisterRoutes registers the archive routes.
func (h *ArchiveHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export", h.Export)
	rg.POST("/import", h.Import)
}

// ExportRequest is the body of POST /export.
type ExportRequest struct {
	File string `json:"file"`
}

// ExportResponse reports where the export was written.
type ExportResponse struct {
	File string `json:"file"`
}

// Export dumps all tables to a JSON file in the archive directory.
func (h *ArchiveHandler) Export(c *gin.Context) {
	var req ExportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}
	if req.File == "" {
		req.File = "export.json"
	}

	name := filepath.Base(req.File)
	if err := h.exporter.Export(c.Request.Context(), filepath.Join(h.dir, name)); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, ExportResponse{File: name})
}

// ImportRequest is the body of POST /import.
type ImportRequest struct {
	File  string `json:"file" binding:"required"`
	Table string `json:"table" binding:"required"`
}

// ImportResponse reports how many rows were written.
type ImportResponse struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

// Import replays one table from a JSON file in the archive directory.
func (h *ArchiveHandler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	name := filepath.Base(req.File)
	rows, err := h.importer.Import(c.Request.Context(), filepath.Join(h.dir, name), req.Table)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, ImportResponse{Table: req.Table, Rows: rows})
}
