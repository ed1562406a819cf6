package partner

import (
	"time"

	"github.com/shopspring/decimal"
)

// Counterparty is a customer, supplier or other business partner.
type Counterparty struct {
	ID          int     `gorm:"primaryKey;column:counterparty_id" json:"id"`
	Name        *string `gorm:"column:name" json:"name,omitempty"`
	Type        *string `gorm:"column:type" json:"type,omitempty"`
	TaxNumber   *string `gorm:"column:tax_number" json:"taxNumber,omitempty"`
	BankDetails *string `gorm:"column:bank_details" json:"bankDetails,omitempty"`
}

// TableName returns the table name for GORM
func (Counterparty) TableName() string { return "counterparties" }

// BankAccount is a bank account belonging to a counterparty. Referential
// integrity to the counterparty is enforced by the store, not here.
type BankAccount struct {
	ID             int     `gorm:"primaryKey;column:account_id" json:"id"`
	CounterpartyID int     `gorm:"column:counterparty_id" json:"counterpartyId"`
	AccountNumber  *string `gorm:"column:account_number" json:"accountNumber,omitempty"`
	BankName       *string `gorm:"column:bank_name" json:"bankName,omitempty"`
}

// TableName returns the table name for GORM
func (BankAccount) TableName() string { return "bank_accounts" }

// Contract is an agreement with a counterparty. EndDate is open-ended when
// nil.
type Contract struct {
	ID             int             `gorm:"primaryKey;column:contract_id" json:"id"`
	CounterpartyID int             `gorm:"column:counterparty_id" json:"counterpartyId"`
	StartDate      time.Time       `gorm:"column:start_date" json:"startDate"`
	EndDate        *time.Time      `gorm:"column:end_date" json:"endDate,omitempty"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
}

// TableName returns the table name for GORM
func (Contract) TableName() string { return "contracts" }
