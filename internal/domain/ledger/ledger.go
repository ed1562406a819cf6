package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartOfAccount is one account in the chart of accounts.
type ChartOfAccount struct {
	ID   int     `gorm:"primaryKey;column:account_id" json:"id"`
	Code *string `gorm:"column:code" json:"code,omitempty"`
	Name *string `gorm:"column:name" json:"name,omitempty"`
	Type *string `gorm:"column:type" json:"type,omitempty"`
}

// TableName returns the table name for GORM
func (ChartOfAccount) TableName() string { return "chart_of_accounts" }

// Transaction is a double-entry ledger posting. Either account side may be
// null on stored rows (legacy imports), but registration requires both and
// rejects equal sides and non-positive amounts.
type Transaction struct {
	ID              int             `gorm:"primaryKey;column:transaction_id" json:"transactionId"`
	Date            time.Time       `gorm:"column:date" json:"date"`
	DebitAccountID  *int            `gorm:"column:debit_account_id" json:"debitAccountId,omitempty"`
	CreditAccountID *int            `gorm:"column:credit_account_id" json:"creditAccountId,omitempty"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	Description     *string         `gorm:"column:description" json:"description,omitempty"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string { return "transactions" }

// AccountBalance is one trial-balance line: total debits, total credits and
// their difference for a single account.
type AccountBalance struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}
