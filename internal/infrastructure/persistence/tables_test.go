package persistence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financebook/backend/internal/domain/shared"
)

func TestAllTables(t *testing.T) {
	tables := AllTables()
	assert.Len(t, tables, 25)

	seen := make(map[Table]bool, len(tables))
	for _, tbl := range tables {
		assert.False(t, seen[tbl], "duplicate table %s", tbl)
		seen[tbl] = true
	}
}

func TestParseTable(t *testing.T) {
	t.Run("exact name", func(t *testing.T) {
		tbl, err := ParseTable("Transactions")
		require.NoError(t, err)
		assert.Equal(t, TableTransactions, tbl)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		tbl, err := ParseTable("chartofaccounts")
		require.NoError(t, err)
		assert.Equal(t, TableChartOfAccounts, tbl)
	})

	t.Run("unknown table is a configuration error", func(t *testing.T) {
		_, err := ParseTable("Ledger")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})
}

func TestSQLName(t *testing.T) {
	cases := map[Table]string{
		TableUsers:              "users",
		TableUserRoles:          "user_roles",
		TableChartOfAccounts:    "chart_of_accounts",
		TableDepreciation:       "depreciation",
		TableInventory:          "inventory",
		TableInventoryMovements: "inventory_movements",
		TableSalaryPayments:     "salary_payments",
	}
	for tbl, want := range cases {
		got, err := SQLName(tbl)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestValidateTableSpecs(t *testing.T) {
	// Every declared table must carry a complete spec; this is the same
	// check NewGateway runs at startup.
	assert.NoError(t, validateTableSpecs())
}
