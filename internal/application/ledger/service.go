// Package ledger implements the bookkeeping operations: transaction
// registration, depreciation and payroll postings, and the financial
// reports derived from the ledger.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/financebook/backend/internal/domain/asset"
	"github.com/financebook/backend/internal/domain/ledger"
	"github.com/financebook/backend/internal/domain/payroll"
	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/infrastructure/persistence"
	"github.com/financebook/backend/internal/infrastructure/strategy"
)

// vatRate is the VAT charged on sales documents.
var vatRate = decimal.New(20, -2)

// salesDocumentTypes are the document type labels that count as sales for
// VAT. Historical data carries both Russian and English labels.
var salesDocumentTypes = []string{"Продажа", "Sale", "Invoice"}

// Service coordinates ledger writes and reports over the persistence
// gateway. Posting operations are not atomic across rows; a failure after
// the first write leaves the earlier rows in place.
type Service struct {
	gateway    *persistence.Gateway
	strategies *strategy.Registry
	logger     *zap.Logger
}

// NewService creates a ledger service.
func NewService(gateway *persistence.Gateway, strategies *strategy.Registry, logger *zap.Logger) *Service {
	return &Service{
		gateway:    gateway,
		strategies: strategies,
		logger:     logger.Named("ledger"),
	}
}

// RegisterTransactionInput carries the fields of a new ledger entry.
type RegisterTransactionInput struct {
	Date            time.Time
	DebitAccountID  *int
	CreditAccountID *int
	Amount          decimal.Decimal
	Description     *string
}

// RegisterTransaction validates and posts a double-entry transaction:
// both accounts must be present and distinct, and the amount positive.
func (s *Service) RegisterTransaction(ctx context.Context, input RegisterTransactionInput) (*ledger.Transaction, error) {
	if input.DebitAccountID == nil || input.CreditAccountID == nil {
		return nil, fmt.Errorf("%w: debit and credit accounts are required", shared.ErrValidation)
	}
	if *input.DebitAccountID == *input.CreditAccountID {
		return nil, fmt.Errorf("%w: debit and credit accounts must differ", shared.ErrValidation)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", shared.ErrValidation)
	}

	id, err := s.gateway.NextID(ctx, persistence.TableTransactions)
	if err != nil {
		return nil, err
	}

	txn := &ledger.Transaction{
		ID:              id,
		Date:            input.Date,
		DebitAccountID:  input.DebitAccountID,
		CreditAccountID: input.CreditAccountID,
		Amount:          input.Amount,
		Description:     input.Description,
	}
	if err := s.gateway.Upsert(ctx, persistence.TableTransactions, txn); err != nil {
		return nil, err
	}

	s.logger.Info("transaction registered",
		zap.Int("transaction_id", txn.ID),
		zap.Int("debit_account_id", *txn.DebitAccountID),
		zap.Int("credit_account_id", *txn.CreditAccountID),
		zap.String("amount", txn.Amount.String()),
	)
	return txn, nil
}

// ComputeDepreciation calculates one period of depreciation for the asset
// using the named method and posts the result.
func (s *Service) ComputeDepreciation(ctx context.Context, a *asset.FixedAsset, period time.Time, method string) (*asset.Depreciation, error) {
	strat, err := s.strategies.Depreciation(method)
	if err != nil {
		return nil, err
	}

	id, err := s.gateway.NextID(ctx, persistence.TableDepreciation)
	if err != nil {
		return nil, err
	}

	methodName := strat.Method()
	dep := &asset.Depreciation{
		ID:      id,
		AssetID: a.ID,
		Month:   period,
		Amount:  strat.Compute(a, period),
		Method:  &methodName,
	}
	if err := s.gateway.Upsert(ctx, persistence.TableDepreciation, dep); err != nil {
		return nil, err
	}

	s.logger.Info("depreciation posted",
		zap.Int("asset_id", a.ID),
		zap.String("method", methodName),
		zap.String("amount", dep.Amount.String()),
	)
	return dep, nil
}

// ComputeDepreciationForAsset resolves the asset by ID before posting.
func (s *Service) ComputeDepreciationForAsset(ctx context.Context, assetID int, period time.Time, method string) (*asset.Depreciation, error) {
	loaded, err := s.gateway.Get(ctx, persistence.TableFixedAssets, assetID)
	if err != nil {
		return nil, err
	}
	return s.ComputeDepreciation(ctx, loaded.(*asset.FixedAsset), period, method)
}

// ComputeSalary calculates the tax deduction for a salary payment using the
// named tax strategy and posts both the payment and its tax row. The two
// writes are sequential; a tax write failure leaves the payment in place.
func (s *Service) ComputeSalary(ctx context.Context, e *payroll.Employee, month time.Time, baseSalary, bonus decimal.Decimal, taxType string) (*payroll.SalaryPayment, *payroll.Tax, error) {
	strat, err := s.strategies.Tax(taxType)
	if err != nil {
		return nil, nil, err
	}

	paymentID, err := s.gateway.NextID(ctx, persistence.TableSalaryPayments)
	if err != nil {
		return nil, nil, err
	}

	payment := &payroll.SalaryPayment{
		ID:           paymentID,
		EmployeeID:   e.ID,
		Month:        month,
		BaseSalary:   baseSalary,
		Bonus:        bonus,
		TaxDeduction: strat.Compute(baseSalary, bonus),
	}
	if err := s.gateway.Upsert(ctx, persistence.TableSalaryPayments, payment); err != nil {
		return nil, nil, err
	}

	taxID, err := s.gateway.NextID(ctx, persistence.TableTaxes)
	if err != nil {
		return payment, nil, err
	}

	taxTypeName := strat.TaxType()
	tax := &payroll.Tax{
		ID:        taxID,
		PaymentID: payment.ID,
		Type:      &taxTypeName,
		Amount:    payment.TaxDeduction,
	}
	if err := s.gateway.Upsert(ctx, persistence.TableTaxes, tax); err != nil {
		return payment, nil, err
	}

	s.logger.Info("salary posted",
		zap.Int("employee_id", e.ID),
		zap.Int("payment_id", payment.ID),
		zap.String("tax_type", taxTypeName),
		zap.String("tax_deduction", payment.TaxDeduction.String()),
	)
	return payment, tax, nil
}

// ComputeSalaryForEmployee resolves the employee by ID before posting.
func (s *Service) ComputeSalaryForEmployee(ctx context.Context, employeeID int, month time.Time, baseSalary, bonus decimal.Decimal, taxType string) (*payroll.SalaryPayment, *payroll.Tax, error) {
	loaded, err := s.gateway.Get(ctx, persistence.TableEmployees, employeeID)
	if err != nil {
		return nil, nil, err
	}
	return s.ComputeSalary(ctx, loaded.(*payroll.Employee), month, baseSalary, bonus, taxType)
}

// TrialBalance folds every transaction into per-account debit and credit
// turnover. Transactions missing one side contribute only to the other, so
// the report stays usable on incomplete historical data.
func (s *Service) TrialBalance(ctx context.Context) (map[int]ledger.AccountBalance, error) {
	loaded, err := s.gateway.LoadTable(ctx, persistence.TableTransactions)
	if err != nil {
		return nil, err
	}

	result := make(map[int]ledger.AccountBalance)
	for _, txn := range loaded.([]ledger.Transaction) {
		if txn.DebitAccountID != nil {
			entry := result[*txn.DebitAccountID]
			entry.Debit = entry.Debit.Add(txn.Amount)
			entry.Balance = entry.Debit.Sub(entry.Credit)
			result[*txn.DebitAccountID] = entry
		}
		if txn.CreditAccountID != nil {
			entry := result[*txn.CreditAccountID]
			entry.Credit = entry.Credit.Add(txn.Amount)
			entry.Balance = entry.Debit.Sub(entry.Credit)
			result[*txn.CreditAccountID] = entry
		}
	}
	return result, nil
}

type counterpartyTotal struct {
	CounterpartyID int             `gorm:"column:counterparty_id"`
	Total          decimal.Decimal `gorm:"column:total"`
}

// ReceivablesPayables sums document totals per counterparty. Positive totals
// are receivable, negative payable; documents without a counterparty are
// excluded.
func (s *Service) ReceivablesPayables(ctx context.Context) (map[int]decimal.Decimal, error) {
	var rows []counterpartyTotal
	err := s.gateway.DB().WithContext(ctx).Raw(
		`SELECT counterparty_id, SUM(total_amount) AS total
		 FROM documents
		 WHERE counterparty_id IS NOT NULL
		 GROUP BY counterparty_id`,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to aggregate receivables: %v", shared.ErrStorage, err)
	}

	result := make(map[int]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.CounterpartyID] = row.Total
	}
	return result, nil
}

type productQuantity struct {
	ProductID int             `gorm:"column:product_id"`
	Quantity  decimal.Decimal `gorm:"column:quantity"`
}

// InventorySnapshot returns the on-hand quantity per product in a warehouse.
func (s *Service) InventorySnapshot(ctx context.Context, warehouseID int) (map[int]decimal.Decimal, error) {
	var rows []productQuantity
	err := s.gateway.DB().WithContext(ctx).Raw(
		`SELECT product_id, quantity FROM inventory WHERE warehouse_id = ?`, warehouseID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read inventory: %v", shared.ErrStorage, err)
	}

	result := make(map[int]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.ProductID] = row.Quantity
	}
	return result, nil
}

type accountTurnover struct {
	Name    string          `gorm:"column:name"`
	Balance decimal.Decimal `gorm:"column:balance"`
}

// BalanceSheet sums transaction amounts per account name. A transaction
// touching an account on either side counts in full toward that account, so
// the figures are gross turnover rather than a netted position.
func (s *Service) BalanceSheet(ctx context.Context) (map[string]decimal.Decimal, error) {
	var rows []accountTurnover
	err := s.gateway.DB().WithContext(ctx).Raw(
		`SELECT coa.name, SUM(t.amount) AS balance
		 FROM transactions t
		 JOIN chart_of_accounts coa
		   ON t.debit_account_id = coa.account_id OR t.credit_account_id = coa.account_id
		 GROUP BY coa.name`,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build balance sheet: %v", shared.ErrStorage, err)
	}

	result := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.Name] = row.Balance
	}
	return result, nil
}

// VAT computes 20% of the summed sales document totals per counterparty.
// The rate is applied in code so the multiplication stays exact.
func (s *Service) VAT(ctx context.Context) (map[int]decimal.Decimal, error) {
	var rows []counterpartyTotal
	err := s.gateway.DB().WithContext(ctx).Raw(
		`SELECT counterparty_id, SUM(total_amount) AS total
		 FROM documents
		 WHERE type IN (?, ?, ?) AND counterparty_id IS NOT NULL
		 GROUP BY counterparty_id`,
		salesDocumentTypes[0], salesDocumentTypes[1], salesDocumentTypes[2],
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute VAT: %v", shared.ErrStorage, err)
	}

	result := make(map[int]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.CounterpartyID] = row.Total.Mul(vatRate)
	}
	return result, nil
}
