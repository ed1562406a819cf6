package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/financebook/backend/internal/domain/asset"
	"github.com/financebook/backend/internal/domain/inventory"
	domainledger "github.com/financebook/backend/internal/domain/ledger"
	"github.com/financebook/backend/internal/domain/payroll"
	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/domain/trade"
	"github.com/financebook/backend/internal/infrastructure/persistence"
	"github.com/financebook/backend/internal/infrastructure/strategy"
)

func setupService(t *testing.T) (*Service, *persistence.Gateway) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, persistence.AutoMigrateAll(db))

	gw, err := persistence.NewGateway(db, zap.NewNop())
	require.NoError(t, err)

	return NewService(gw, strategy.Default(), zap.NewNop()), gw
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_RegisterTransaction(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	t.Run("posts a valid transaction", func(t *testing.T) {
		txn, err := svc.RegisterTransaction(ctx, RegisterTransactionInput{
			Date:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DebitAccountID:  intPtr(10),
			CreditAccountID: intPtr(20),
			Amount:          dec("150.00"),
			Description:     strPtr("office rent"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, txn.ID)

		count, err := gw.Count(ctx, persistence.TableTransactions)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("allocates sequential ids", func(t *testing.T) {
		txn, err := svc.RegisterTransaction(ctx, RegisterTransactionInput{
			DebitAccountID:  intPtr(10),
			CreditAccountID: intPtr(30),
			Amount:          dec("5"),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, txn.ID)
	})

	t.Run("rejects missing accounts", func(t *testing.T) {
		_, err := svc.RegisterTransaction(ctx, RegisterTransactionInput{
			DebitAccountID: intPtr(10),
			Amount:         dec("5"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("rejects identical accounts", func(t *testing.T) {
		_, err := svc.RegisterTransaction(ctx, RegisterTransactionInput{
			DebitAccountID:  intPtr(10),
			CreditAccountID: intPtr(10),
			Amount:          dec("5"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-3.50"} {
			_, err := svc.RegisterTransaction(ctx, RegisterTransactionInput{
				DebitAccountID:  intPtr(10),
				CreditAccountID: intPtr(20),
				Amount:          dec(amount),
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrValidation))
		}
	})
}

func TestService_ComputeDepreciationForAsset(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	require.NoError(t, gw.Upsert(ctx, persistence.TableFixedAssets, &asset.FixedAsset{
		ID:          1,
		Name:        strPtr("lathe"),
		InitialCost: dec("120000"),
		UsefulLife:  5,
	}))

	t.Run("posts straight-line depreciation", func(t *testing.T) {
		dep, err := svc.ComputeDepreciationForAsset(ctx, 1, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "straight-line")
		require.NoError(t, err)
		assert.Equal(t, 1, dep.ID)
		assert.Equal(t, 1, dep.AssetID)
		assert.True(t, dep.Amount.Equal(dec("2000")), "got %s", dep.Amount)
		assert.Equal(t, "straight-line", *dep.Method)
	})

	t.Run("unknown method is a configuration error", func(t *testing.T) {
		_, err := svc.ComputeDepreciationForAsset(ctx, 1, time.Now(), "sum-of-years")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})

	t.Run("unknown asset is not found", func(t *testing.T) {
		_, err := svc.ComputeDepreciationForAsset(ctx, 42, time.Now(), "straight-line")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestService_ComputeSalaryForEmployee(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	require.NoError(t, gw.Upsert(ctx, persistence.TableEmployees, &payroll.Employee{
		ID:       1,
		FullName: strPtr("Ivanov I.I."),
	}))

	t.Run("posts payment and tax rows", func(t *testing.T) {
		month := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		payment, tax, err := svc.ComputeSalaryForEmployee(ctx, 1, month, dec("50000"), dec("5000"), "income tax")
		require.NoError(t, err)

		assert.Equal(t, 1, payment.ID)
		assert.True(t, payment.TaxDeduction.Equal(dec("7150")), "got %s", payment.TaxDeduction)

		require.NotNil(t, tax)
		assert.Equal(t, payment.ID, tax.PaymentID)
		assert.Equal(t, "income tax", *tax.Type)
		assert.True(t, tax.Amount.Equal(payment.TaxDeduction))
	})

	t.Run("unknown tax type is a configuration error", func(t *testing.T) {
		_, _, err := svc.ComputeSalaryForEmployee(ctx, 1, time.Now(), dec("100"), dec("0"), "property tax")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrConfiguration))
	})

	t.Run("unknown employee is not found", func(t *testing.T) {
		_, _, err := svc.ComputeSalaryForEmployee(ctx, 42, time.Now(), dec("100"), dec("0"), "income tax")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestService_TrialBalance(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	seed := []domainledger.Transaction{
		{ID: 1, DebitAccountID: intPtr(1), CreditAccountID: intPtr(2), Amount: dec("100")},
		{ID: 2, DebitAccountID: intPtr(2), CreditAccountID: intPtr(3), Amount: dec("50")},
		{ID: 3, DebitAccountID: intPtr(1), CreditAccountID: nil, Amount: dec("25")},
	}
	for i := range seed {
		require.NoError(t, gw.Upsert(ctx, persistence.TableTransactions, &seed[i]))
	}

	balances, err := svc.TrialBalance(ctx)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	assert.True(t, balances[1].Debit.Equal(dec("125")))
	assert.True(t, balances[1].Credit.Equal(dec("0")))
	assert.True(t, balances[1].Balance.Equal(dec("125")))

	assert.True(t, balances[2].Debit.Equal(dec("50")))
	assert.True(t, balances[2].Credit.Equal(dec("100")))
	assert.True(t, balances[2].Balance.Equal(dec("-50")))

	assert.True(t, balances[3].Credit.Equal(dec("50")))
	assert.True(t, balances[3].Balance.Equal(dec("-50")))

	// Fully two-sided entries cancel out in aggregate; the one-sided
	// entry surfaces as the net imbalance.
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	assert.True(t, total.Equal(dec("25")), "got %s", total)
}

func TestService_ReceivablesPayables(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	docs := []trade.Document{
		{ID: 1, Type: strPtr("Sale"), CounterpartyID: intPtr(1), TotalAmount: dec("1000")},
		{ID: 2, Type: strPtr("Sale"), CounterpartyID: intPtr(1), TotalAmount: dec("250.50")},
		{ID: 3, Type: strPtr("Purchase"), CounterpartyID: intPtr(2), TotalAmount: dec("-400")},
		{ID: 4, Type: strPtr("Sale"), CounterpartyID: nil, TotalAmount: dec("999")},
	}
	for i := range docs {
		require.NoError(t, gw.Upsert(ctx, persistence.TableDocuments, &docs[i]))
	}

	result, err := svc.ReceivablesPayables(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[1].Equal(dec("1250.50")), "got %s", result[1])
	assert.True(t, result[2].Equal(dec("-400")))
}

func TestService_BalanceSheet(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	require.NoError(t, gw.Upsert(ctx, persistence.TableChartOfAccounts, &domainledger.ChartOfAccount{ID: 1, Name: strPtr("Cash")}))
	require.NoError(t, gw.Upsert(ctx, persistence.TableChartOfAccounts, &domainledger.ChartOfAccount{ID: 2, Name: strPtr("Sales")}))
	require.NoError(t, gw.Upsert(ctx, persistence.TableTransactions, &domainledger.Transaction{
		ID: 1, DebitAccountID: intPtr(1), CreditAccountID: intPtr(2), Amount: dec("100"),
	}))

	result, err := svc.BalanceSheet(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// A transaction touching an account on either side counts in full,
	// so both accounts show the gross 100.
	assert.True(t, result["Cash"].Equal(dec("100")))
	assert.True(t, result["Sales"].Equal(dec("100")))
}

func TestService_VAT(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	docs := []trade.Document{
		{ID: 1, Type: strPtr("Sale"), CounterpartyID: intPtr(1), TotalAmount: dec("1000")},
		{ID: 2, Type: strPtr("Продажа"), CounterpartyID: intPtr(1), TotalAmount: dec("500")},
		{ID: 3, Type: strPtr("Purchase"), CounterpartyID: intPtr(1), TotalAmount: dec("700")},
		{ID: 4, Type: strPtr("Invoice"), CounterpartyID: intPtr(2), TotalAmount: dec("100.10")},
		{ID: 5, Type: strPtr("Sale"), CounterpartyID: nil, TotalAmount: dec("999")},
	}
	for i := range docs {
		require.NoError(t, gw.Upsert(ctx, persistence.TableDocuments, &docs[i]))
	}

	result, err := svc.VAT(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[1].Equal(dec("300")), "got %s", result[1])
	assert.True(t, result[2].Equal(dec("20.02")), "got %s", result[2])
}

func TestService_InventorySnapshot(t *testing.T) {
	svc, gw := setupService(t)
	ctx := context.Background()

	rows := []inventory.Inventory{
		{ID: 1, WarehouseID: 1, ProductID: 10, Quantity: dec("5.500")},
		{ID: 2, WarehouseID: 1, ProductID: 11, Quantity: dec("3")},
		{ID: 3, WarehouseID: 2, ProductID: 10, Quantity: dec("7")},
	}
	for i := range rows {
		require.NoError(t, gw.Upsert(ctx, persistence.TableInventory, &rows[i]))
	}

	result, err := svc.InventorySnapshot(ctx, 1)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[10].Equal(dec("5.5")))
	assert.True(t, result[11].Equal(dec("3")))
}
