package persistence

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financebook/backend/internal/domain/shared"
)

// Gateway is a typed persistence gateway over the managed tables. Writes are
// idempotent upserts keyed on each table's primary key, so replaying an
// import never duplicates rows.
//
// ID allocation uses MAX(id)+1 and is only safe with a single writer; the
// application serializes writes at the service layer.
type Gateway struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGateway creates a gateway over db. The table registry is validated here
// so an incomplete registration fails at startup rather than on a request.
func NewGateway(db *gorm.DB, logger *zap.Logger) (*Gateway, error) {
	if err := validateTableSpecs(); err != nil {
		return nil, err
	}
	return &Gateway{db: db, logger: logger.Named("gateway")}, nil
}

// LoadTable loads every row of the table ordered by primary key. The result
// is a slice of the table's entity type, e.g. []identity.User for TableUsers.
func (g *Gateway) LoadTable(ctx context.Context, t Table) (any, error) {
	spec, ok := tableSpecs[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, t)
	}

	dest := spec.slice()
	query := g.db.WithContext(ctx)
	for _, col := range spec.conflictColumns {
		query = query.Order(col)
	}
	if err := query.Find(dest).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to load table %s: %v", shared.ErrStorage, t, err)
	}
	return reflect.ValueOf(dest).Elem().Interface(), nil
}

// Get loads one row by primary key. The result is a pointer to the table's
// entity type. Junction tables have no single key and reject lookups.
func (g *Gateway) Get(ctx context.Context, t Table, id int) (any, error) {
	spec, ok := tableSpecs[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, t)
	}
	if spec.idColumn == "" {
		return nil, fmt.Errorf("%w: table '%s' has no surrogate key", shared.ErrConfiguration, t)
	}

	dest := spec.model()
	err := g.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", spec.idColumn), id).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s id %d", shared.ErrNotFound, t, id)
		}
		return nil, fmt.Errorf("%w: failed to load %s id %d: %v", shared.ErrStorage, t, id, err)
	}
	return dest, nil
}

// Upsert inserts or replaces one row. The item must be a pointer to the
// table's entity type. Conflicts on the primary key update every column;
// junction tables keep the existing row instead.
func (g *Gateway) Upsert(ctx context.Context, t Table, item any) error {
	spec, ok := tableSpecs[t]
	if !ok {
		return fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, t)
	}
	if err := checkItemType(t, spec, item); err != nil {
		return err
	}

	columns := make([]clause.Column, 0, len(spec.conflictColumns))
	for _, col := range spec.conflictColumns {
		columns = append(columns, clause.Column{Name: col})
	}

	onConflict := clause.OnConflict{Columns: columns, UpdateAll: true}
	if spec.ignoreConflicts {
		onConflict = clause.OnConflict{Columns: columns, DoNothing: true}
	}

	if err := g.db.WithContext(ctx).Clauses(onConflict).Create(item).Error; err != nil {
		return fmt.Errorf("%w: failed to upsert into %s: %v", shared.ErrStorage, t, err)
	}
	return nil
}

// UpsertAll applies Upsert to each item in order and returns the number of
// rows written. On failure the rows before the failing item stay written;
// the count tells the caller how far the batch got.
func (g *Gateway) UpsertAll(ctx context.Context, t Table, items []any) (int, error) {
	for i, item := range items {
		if err := g.Upsert(ctx, t, item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// NextID allocates the next primary key value for the table as MAX(id)+1.
// Junction tables have no surrogate key and reject allocation.
func (g *Gateway) NextID(ctx context.Context, t Table) (int, error) {
	spec, ok := tableSpecs[t]
	if !ok {
		return 0, fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, t)
	}
	if spec.idColumn == "" {
		return 0, fmt.Errorf("%w: table '%s' has no surrogate key", shared.ErrConfiguration, t)
	}

	sqlName, err := SQLName(t)
	if err != nil {
		return 0, err
	}

	var next int
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", spec.idColumn, sqlName)
	if err := g.db.WithContext(ctx).Raw(query).Scan(&next).Error; err != nil {
		return 0, fmt.Errorf("%w: failed to allocate id for %s: %v", shared.ErrStorage, t, err)
	}
	return next, nil
}

// Count returns the number of rows in the table.
func (g *Gateway) Count(ctx context.Context, t Table) (int64, error) {
	spec, ok := tableSpecs[t]
	if !ok {
		return 0, fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, t)
	}

	var count int64
	if err := g.db.WithContext(ctx).Model(spec.model()).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: failed to count %s: %v", shared.ErrStorage, t, err)
	}
	return count, nil
}

// DB exposes the underlying GORM handle for query-shaped reads that do not
// fit the table-oriented API.
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

func checkItemType(t Table, spec tableSpec, item any) error {
	expected := reflect.TypeOf(spec.model())
	if got := reflect.TypeOf(item); got != expected {
		return fmt.Errorf("%w: table '%s' expects %s, got %s", shared.ErrValidation, t, expected, got)
	}
	return nil
}
