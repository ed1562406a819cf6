package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/financebook/backend/internal/domain/identity"
	"github.com/financebook/backend/internal/domain/ledger"
	"github.com/financebook/backend/internal/domain/payroll"
	"github.com/financebook/backend/internal/domain/shared"
)

func setupGatewayTest(t *testing.T) *Gateway {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrateAll(db))

	gw, err := NewGateway(db, zap.NewNop())
	require.NoError(t, err)
	return gw
}

func strPtr(s string) *string { return &s }

func TestGateway_UpsertAndLoad(t *testing.T) {
	gw := setupGatewayTest(t)
	ctx := context.Background()

	t.Run("insert then load ordered by id", func(t *testing.T) {
		require.NoError(t, gw.Upsert(ctx, TableUsers, &identity.User{ID: 2, Username: strPtr("bob"), IsActive: true}))
		require.NoError(t, gw.Upsert(ctx, TableUsers, &identity.User{ID: 1, Username: strPtr("alice"), IsActive: true}))

		loaded, err := gw.LoadTable(ctx, TableUsers)
		require.NoError(t, err)

		users, ok := loaded.([]identity.User)
		require.True(t, ok)
		require.Len(t, users, 2)
		assert.Equal(t, 1, users[0].ID)
		assert.Equal(t, "alice", *users[0].Username)
		assert.Equal(t, 2, users[1].ID)
	})

	t.Run("conflicting id replaces the row", func(t *testing.T) {
		require.NoError(t, gw.Upsert(ctx, TableUsers, &identity.User{ID: 1, Username: strPtr("alice-renamed"), IsActive: false}))

		loaded, err := gw.LoadTable(ctx, TableUsers)
		require.NoError(t, err)

		users := loaded.([]identity.User)
		require.Len(t, users, 2)
		assert.Equal(t, "alice-renamed", *users[0].Username)
		assert.False(t, users[0].IsActive)
	})

	t.Run("junction conflict keeps existing row", func(t *testing.T) {
		require.NoError(t, gw.Upsert(ctx, TableUserRoles, &identity.UserRole{UserID: 1, RoleID: 5}))
		require.NoError(t, gw.Upsert(ctx, TableUserRoles, &identity.UserRole{UserID: 1, RoleID: 5}))

		count, err := gw.Count(ctx, TableUserRoles)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("wrong item type is a validation error", func(t *testing.T) {
		err := gw.Upsert(ctx, TableUsers, &identity.Role{ID: 1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("unknown table is a configuration error", func(t *testing.T) {
		_, err := gw.LoadTable(ctx, Table("Ledger"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})
}

func TestGateway_UpsertDecimalRoundTrip(t *testing.T) {
	gw := setupGatewayTest(t)
	ctx := context.Background()

	amount := decimal.RequireFromString("1234.56")
	txn := &ledger.Transaction{ID: 1, Amount: amount}
	require.NoError(t, gw.Upsert(ctx, TableTransactions, txn))

	loaded, err := gw.LoadTable(ctx, TableTransactions)
	require.NoError(t, err)

	txns := loaded.([]ledger.Transaction)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.Equal(amount), "got %s", txns[0].Amount)
}

func TestGateway_Get(t *testing.T) {
	gw := setupGatewayTest(t)
	ctx := context.Background()

	require.NoError(t, gw.Upsert(ctx, TableUsers, &identity.User{ID: 3, Username: strPtr("carol"), IsActive: true}))

	t.Run("loads row by id", func(t *testing.T) {
		got, err := gw.Get(ctx, TableUsers, 3)
		require.NoError(t, err)

		user, ok := got.(*identity.User)
		require.True(t, ok)
		assert.Equal(t, "carol", *user.Username)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		_, err := gw.Get(ctx, TableUsers, 99)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("junction tables reject lookup", func(t *testing.T) {
		_, err := gw.Get(ctx, TableUserRoles, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})
}

func TestGateway_UpsertAll(t *testing.T) {
	gw := setupGatewayTest(t)
	ctx := context.Background()

	t.Run("writes every item", func(t *testing.T) {
		items := []any{
			&payroll.Department{ID: 1, Name: strPtr("Finance")},
			&payroll.Department{ID: 2, Name: strPtr("Logistics")},
		}
		n, err := gw.UpsertAll(ctx, TableDepartments, items)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("duplicate ids resolve last-write-wins", func(t *testing.T) {
		items := []any{
			&payroll.Tax{ID: 1, PaymentID: 10, Type: strPtr("income tax"), Amount: decimal.NewFromInt(6500)},
			&payroll.Tax{ID: 1, PaymentID: 11, Type: strPtr("social tax"), Amount: decimal.NewFromInt(15000)},
		}
		n, err := gw.UpsertAll(ctx, TableTaxes, items)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		count, err := gw.Count(ctx, TableTaxes)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		got, err := gw.Get(ctx, TableTaxes, 1)
		require.NoError(t, err)
		tax := got.(*payroll.Tax)
		assert.Equal(t, 11, tax.PaymentID)
		assert.Equal(t, "social tax", *tax.Type)
		assert.True(t, tax.Amount.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("stops at the first failure and reports progress", func(t *testing.T) {
		items := []any{
			&payroll.Department{ID: 3, Name: strPtr("Sales")},
			&identity.User{ID: 9}, // wrong type for this table
			&payroll.Department{ID: 4, Name: strPtr("Support")},
		}
		n, err := gw.UpsertAll(ctx, TableDepartments, items)
		require.Error(t, err)
		assert.Equal(t, 1, n)

		count, err := gw.Count(ctx, TableDepartments)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestGateway_NextID(t *testing.T) {
	gw := setupGatewayTest(t)
	ctx := context.Background()

	t.Run("empty table allocates 1", func(t *testing.T) {
		next, err := gw.NextID(ctx, TableTransactions)
		require.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("follows the current maximum", func(t *testing.T) {
		require.NoError(t, gw.Upsert(ctx, TableTransactions, &ledger.Transaction{ID: 7, Amount: decimal.NewFromInt(10)}))

		next, err := gw.NextID(ctx, TableTransactions)
		require.NoError(t, err)
		assert.Equal(t, 8, next)
	})

	t.Run("junction tables reject allocation", func(t *testing.T) {
		_, err := gw.NextID(ctx, TableUserRoles)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})
}
