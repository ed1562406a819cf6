package strategy

import (
	"time"

	"github.com/financebook/backend/internal/domain/asset"
	"github.com/shopspring/decimal"
)

// Depreciation computes the depreciation amount of a fixed asset for one
// period. Implementations are pure: bad asset data (non-positive cost or
// useful life) yields a zero amount, never an error.
type Depreciation interface {
	// Compute returns the depreciation amount for the given period.
	Compute(a *asset.FixedAsset, period time.Time) decimal.Decimal
	// Method returns the strategy's discriminator, recorded on every
	// Depreciation row it produces.
	Method() string
}

// Built-in depreciation method names.
const (
	MethodStraightLine     = "straight-line"
	MethodDecliningBalance = "declining-balance"
)

var monthsPerYear = decimal.NewFromInt(12)

// StraightLine depreciates an asset evenly over its useful life:
// initial cost / (useful life in years * 12) per month.
type StraightLine struct{}

// NewStraightLine creates a straight-line depreciation strategy.
func NewStraightLine() StraightLine { return StraightLine{} }

// Compute implements Depreciation. The result is the same for every period.
func (StraightLine) Compute(a *asset.FixedAsset, _ time.Time) decimal.Decimal {
	if a.InitialCost.LessThanOrEqual(decimal.Zero) || a.UsefulLife <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(a.UsefulLife)).Mul(monthsPerYear)
	return a.InitialCost.Div(months)
}

// Method implements Depreciation.
func (StraightLine) Method() string { return MethodStraightLine }

// DecliningBalance applies a fixed annual rate to the asset's cost:
// initial cost * (rate / 12) per month. The rate is applied to the original
// cost every period, not to a shrinking book value; the strategy contract
// provides no accumulated-depreciation input to reduce against.
type DecliningBalance struct {
	rate decimal.Decimal
}

// DefaultDecliningRate is the annual rate used when none is supplied.
var DefaultDecliningRate = decimal.NewFromFloat(0.2)

// NewDecliningBalance creates a declining-balance strategy with the default
// annual rate of 20%.
func NewDecliningBalance() DecliningBalance {
	return DecliningBalance{rate: DefaultDecliningRate}
}

// NewDecliningBalanceWithRate creates a declining-balance strategy with a
// custom annual rate.
func NewDecliningBalanceWithRate(rate decimal.Decimal) DecliningBalance {
	return DecliningBalance{rate: rate}
}

// Compute implements Depreciation.
func (d DecliningBalance) Compute(a *asset.FixedAsset, _ time.Time) decimal.Decimal {
	if a.InitialCost.LessThanOrEqual(decimal.Zero) || a.UsefulLife <= 0 {
		return decimal.Zero
	}
	return a.InitialCost.Mul(d.rate.Div(monthsPerYear))
}

// Method implements Depreciation.
func (DecliningBalance) Method() string { return MethodDecliningBalance }
