package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/infrastructure/persistence"
)

// Exporter writes every managed table into one JSON document keyed by
// table identifier.
type Exporter struct {
	gateway *persistence.Gateway
	logger  *zap.Logger
}

// NewExporter creates an exporter over the gateway.
func NewExporter(gateway *persistence.Gateway, logger *zap.Logger) *Exporter {
	return &Exporter{gateway: gateway, logger: logger.Named("export")}
}

// Export dumps all tables to path. Export is best-effort: a table that
// fails to load is logged and omitted from the document rather than
// failing the whole export.
func (e *Exporter) Export(ctx context.Context, path string) error {
	doc := make(map[string]any, len(persistence.AllTables()))
	for _, t := range persistence.AllTables() {
		rows, err := e.gateway.LoadTable(ctx, t)
		if err != nil {
			e.logger.Warn("table skipped", zap.String("table", string(t)), zap.Error(err))
			continue
		}
		doc[string(t)] = rows
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode export: %v", shared.ErrSerialization, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", shared.ErrStorage, path, err)
	}

	e.logger.Info("export written", zap.String("path", path), zap.Int("tables", len(doc)))
	return nil
}
