package archive

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/financebook/backend/internal/domain/identity"
	"github.com/financebook/backend/internal/domain/ledger"
	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/infrastructure/persistence"
)

func setupArchiveTest(t *testing.T) (*persistence.Gateway, *Exporter, *Importer) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, persistence.AutoMigrateAll(db))

	gw, err := persistence.NewGateway(db, zap.NewNop())
	require.NoError(t, err)

	return gw, NewExporter(gw, zap.NewNop()), NewImporter(gw, zap.NewNop())
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestDecoders_CoverAllTables(t *testing.T) {
	for _, tbl := range persistence.AllTables() {
		assert.Contains(t, decoders, tbl, "table %s has no decoder", tbl)
	}
}

func TestValue(t *testing.T) {
	t.Run("decimal accepts quoted and bare numbers", func(t *testing.T) {
		var quoted, bare Value
		require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &quoted))
		require.NoError(t, json.Unmarshal([]byte(`12.34`), &bare))

		dq, err := quoted.Decimal()
		require.NoError(t, err)
		db, err := bare.Decimal()
		require.NoError(t, err)
		assert.True(t, dq.Equal(db))
	})

	t.Run("null is typed", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(`null`), &v))
		assert.True(t, v.IsNull())
	})

	t.Run("nested structures are rejected", func(t *testing.T) {
		var v Value
		err := json.Unmarshal([]byte(`{"a":1}`), &v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrSerialization))
	})

	t.Run("integer strings must be digits only", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(`"12abc"`), &v))
		_, err := v.Int()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrSerialization))

		require.NoError(t, json.Unmarshal([]byte(`"12"`), &v))
		n, err := v.Int()
		require.NoError(t, err)
		assert.Equal(t, 12, n)
	})

	t.Run("timestamps tolerate missing zone and time", func(t *testing.T) {
		for _, raw := range []string{`"2024-03-01T10:30:00Z"`, `"2024-03-01T10:30:00"`, `"2024-03-01"`} {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(raw), &v))
			ts, err := v.Time()
			require.NoError(t, err, raw)
			assert.Equal(t, 2024, ts.Year())
		}
	})
}

func TestExportImport_RoundTrip(t *testing.T) {
	gw, exporter, _ := setupArchiveTest(t)
	ctx := context.Background()

	seed := []ledger.Transaction{
		{ID: 1, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), DebitAccountID: intPtr(1), CreditAccountID: intPtr(2), Amount: decimal.RequireFromString("100.25"), Description: strPtr("rent")},
		{ID: 2, Date: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), DebitAccountID: intPtr(2), CreditAccountID: nil, Amount: decimal.NewFromInt(40)},
	}
	for i := range seed {
		require.NoError(t, gw.Upsert(ctx, persistence.TableTransactions, &seed[i]))
	}
	require.NoError(t, gw.Upsert(ctx, persistence.TableUsers, &identity.User{ID: 1, Username: strPtr("alice"), IsActive: true}))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, exporter.Export(ctx, path))

	// Replay the export into a fresh store and compare.
	gw2, _, importer2 := setupArchiveTest(t)

	n, err := importer2.Import(ctx, path, "Transactions")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = importer2.Import(ctx, path, "Users")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loaded, err := gw2.LoadTable(ctx, persistence.TableTransactions)
	require.NoError(t, err)
	txns := loaded.([]ledger.Transaction)
	require.Len(t, txns, 2)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, "rent", *txns[0].Description)
	assert.Equal(t, 2, *txns[0].CreditAccountID)
	assert.Nil(t, txns[1].CreditAccountID)

	loadedUsers, err := gw2.LoadTable(ctx, persistence.TableUsers)
	require.NoError(t, err)
	users := loadedUsers.([]identity.User)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", *users[0].Username)
	assert.True(t, users[0].IsActive)
}

func TestImporter_KeySpellings(t *testing.T) {
	gw, _, importer := setupArchiveTest(t)
	ctx := context.Background()

	// Documents written by other tools carry SQL column names.
	doc := `{
		"Transactions": [
			{"transaction_id": 5, "date": "2024-02-01", "debit_account_id": 1, "credit_account_id": 2, "amount": 75.5}
		]
	}`
	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	n, err := importer.Import(ctx, path, "Transactions")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loaded, err := gw.LoadTable(ctx, persistence.TableTransactions)
	require.NoError(t, err)
	txns := loaded.([]ledger.Transaction)
	require.Len(t, txns, 1)
	assert.Equal(t, 5, txns[0].ID)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("75.5")))
}

func TestImporter_MissingFieldsDefault(t *testing.T) {
	gw, _, importer := setupArchiveTest(t)
	ctx := context.Background()

	doc := `{"Users": [{"id": 9}]}`
	path := filepath.Join(t.TempDir(), "sparse.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	n, err := importer.Import(ctx, path, "Users")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loaded, err := gw.LoadTable(ctx, persistence.TableUsers)
	require.NoError(t, err)
	users := loaded.([]identity.User)
	require.Len(t, users, 1)
	assert.Nil(t, users[0].Username)
	assert.False(t, users[0].IsActive)
}

func TestImporter_EmptyStringsDecodeAsNull(t *testing.T) {
	gw, _, importer := setupArchiveTest(t)
	ctx := context.Background()

	// Spreadsheet exports spell missing numbers and dates as "".
	doc := `{
		"Transactions": [
			{"transactionId": 1, "date": "2024-01-01", "debitAccountId": "", "creditAccountId": 2, "amount": ""}
		]
	}`
	path := filepath.Join(t.TempDir(), "blank.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	n, err := importer.Import(ctx, path, "Transactions")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loaded, err := gw.LoadTable(ctx, persistence.TableTransactions)
	require.NoError(t, err)
	txns := loaded.([]ledger.Transaction)
	require.Len(t, txns, 1)
	assert.Nil(t, txns[0].DebitAccountID)
	require.NotNil(t, txns[0].CreditAccountID)
	assert.Equal(t, 2, *txns[0].CreditAccountID)
	assert.True(t, txns[0].Amount.IsZero())
}

func TestImporter_Errors(t *testing.T) {
	_, _, importer := setupArchiveTest(t)
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("missing file is not found", func(t *testing.T) {
		_, err := importer.Import(ctx, filepath.Join(dir, "absent.json"), "Users")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("unknown table is a configuration error", func(t *testing.T) {
		path := filepath.Join(dir, "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		_, err := importer.Import(ctx, path, "Ledger")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})

	t.Run("absent table key is not found", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Roles": []}`), 0644))

		_, err := importer.Import(ctx, path, "Users")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("malformed document is a serialization error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Users": [{"id"`), 0644))

		_, err := importer.Import(ctx, path, "Users")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrSerialization))
	})

	t.Run("malformed row is a serialization error", func(t *testing.T) {
		path := filepath.Join(dir, "badrow.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Users": [{"id": "not-a-number"}]}`), 0644))

		_, err := importer.Import(ctx, path, "Users")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrSerialization))
	})
}
