package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/infrastructure/persistence"
)

// Importer replays one table from a JSON export document into the store.
type Importer struct {
	gateway *persistence.Gateway
	logger  *zap.Logger
}

// NewImporter creates an importer over the gateway.
func NewImporter(gateway *persistence.Gateway, logger *zap.Logger) *Importer {
	return &Importer{gateway: gateway, logger: logger.Named("import")}
}

// Import loads the named table from the document at path and upserts its
// rows in document order. It returns the number of rows written; on
// failure the rows written before the failing record stay in place.
func (i *Importer) Import(ctx context.Context, path, tableName string) (int, error) {
	t, err := persistence.ParseTable(tableName)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: import file %s", shared.ErrNotFound, path)
		}
		return 0, fmt.Errorf("%w: failed to read %s: %v", shared.ErrStorage, path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("%w: malformed import document: %v", shared.ErrSerialization, err)
	}

	raw, ok := lookupTableKey(doc, t)
	if !ok {
		return 0, fmt.Errorf("%w: table '%s' not present in document", shared.ErrNotFound, t)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, fmt.Errorf("%w: malformed rows for table '%s': %v", shared.ErrSerialization, t, err)
	}

	decode, ok := decoders[t]
	if !ok {
		return 0, fmt.Errorf("%w: no decoder for table '%s'", shared.ErrConfiguration, t)
	}

	items := make([]any, 0, len(records))
	for n, rec := range records {
		item, err := decode(rec)
		if err != nil {
			return 0, fmt.Errorf("table '%s' row %d: %w", t, n, err)
		}
		items = append(items, item)
	}

	written, err := i.gateway.UpsertAll(ctx, t, items)
	if err != nil {
		return written, err
	}

	i.logger.Info("table imported",
		zap.String("path", path),
		zap.String("table", string(t)),
		zap.Int("rows", written),
	)
	return written, nil
}

// lookupTableKey finds the document key for a table, tolerating key
// spellings that differ only in case.
func lookupTableKey(doc map[string]json.RawMessage, t Table) (json.RawMessage, bool) {
	if raw, ok := doc[string(t)]; ok {
		return raw, true
	}
	for key, raw := range doc {
		if strings.EqualFold(key, string(t)) {
			return raw, true
		}
	}
	return nil, false
}

// Table aliases the persistence table identifier for this package's API.
type Table = persistence.Table
