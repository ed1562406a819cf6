package strategy

import "github.com/shopspring/decimal"

// Tax computes the tax levied on one salary payment. Implementations are
// pure functions of the payment's base salary and bonus.
type Tax interface {
	// Compute returns the tax amount for the given base salary and bonus.
	Compute(baseSalary, bonus decimal.Decimal) decimal.Decimal
	// TaxType returns the strategy's discriminator, recorded on every Tax
	// row it produces.
	TaxType() string
}

// Built-in tax type names.
const (
	TaxTypeIncome = "income tax"
	TaxTypeSocial = "social tax"
)

// IncomeTax levies 13% of base salary plus bonus.
type IncomeTax struct{}

// NewIncomeTax creates an income tax strategy.
func NewIncomeTax() IncomeTax { return IncomeTax{} }

var incomeRate = decimal.NewFromFloat(0.13)

// Compute implements Tax.
func (IncomeTax) Compute(baseSalary, bonus decimal.Decimal) decimal.Decimal {
	return baseSalary.Add(bonus).Mul(incomeRate)
}

// TaxType implements Tax.
func (IncomeTax) TaxType() string { return TaxTypeIncome }

// SocialTax levies 30% of base salary plus bonus.
type SocialTax struct{}

// NewSocialTax creates a social tax strategy.
func NewSocialTax() SocialTax { return SocialTax{} }

var socialRate = decimal.NewFromFloat(0.3)

// Compute implements Tax.
func (SocialTax) Compute(baseSalary, bonus decimal.Decimal) decimal.Decimal {
	return baseSalary.Add(bonus).Mul(socialRate)
}

// TaxType implements Tax.
func (SocialTax) TaxType() string { return TaxTypeSocial }
