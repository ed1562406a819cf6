package strategy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIncomeTax_Compute(t *testing.T) {
	s := NewIncomeTax()

	t.Run("levies thirteen percent of base plus bonus", func(t *testing.T) {
		got := s.Compute(decimal.NewFromInt(50000), decimal.NewFromInt(5000))
		assert.True(t, got.Equal(decimal.NewFromInt(7150)), "got %s", got)
	})

	t.Run("zero payment yields zero tax", func(t *testing.T) {
		assert.True(t, s.Compute(decimal.Zero, decimal.Zero).IsZero())
	})

	assert.Equal(t, TaxTypeIncome, s.TaxType())
}

func TestSocialTax_Compute(t *testing.T) {
	s := NewSocialTax()

	t.Run("levies thirty percent of base plus bonus", func(t *testing.T) {
		got := s.Compute(decimal.NewFromInt(40000), decimal.NewFromInt(10000))
		assert.True(t, got.Equal(decimal.NewFromInt(15000)), "got %s", got)
	})

	assert.Equal(t, TaxTypeSocial, s.TaxType())
}
