package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/financebook/backend/internal/infrastructure/persistence"
)

// TableHandler exposes raw table reads.
type TableHandler struct {
	BaseHandler
	gateway *persistence.Gateway
}

// NewTableHandler creates a table handler.
func NewTableHandler(gateway *persistence.Gateway) *TableHandler {
	return &TableHandler{gateway: gateway}
}

// RegisterRoutes registers the table routes.
func (h *TableHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tables := rg.Group("/tables")
	{
		tables.GET("", h.ListTables)
		tables.GET("/:table", h.GetTable)
	}
}

// TableResponse wraps the rows of one table.
type TableResponse struct {
	Table string `json:"table"`
	Rows  any    `json:"rows"`
}

// GetTable returns every row of the named table ordered by primary key.
func (h *TableHandler) GetTable(c *gin.Context) {
	table, err := persistence.ParseTable(c.Param("table"))
	if err != nil {
		h.DomainError(c, err)
		return
	}

	rows, err := h.gateway.LoadTable(c.Request.Context(), table)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, TableResponse{Table: string(table), Rows: rows})
}

// ListTables returns the managed table identifiers.
func (h *TableHandler) ListTables(c *gin.Context) {
	tables := persistence.AllTables()
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, string(t))
	}
	h.Success(c, names)
}
