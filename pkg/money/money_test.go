package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestMulAndRound tests rate application with two-decimal rounding
func TestMulAndRound(t *testing.T) {
	a := FromDecimal(decimal.NewFromFloat(1000.555))

	product := a.Mul(decimal.NewFromFloat(0.30))
	assert.Equal(t, "300.17", product.Round().String(),
		"1000.555 * 0.30 = 300.1665 rounds half away from zero")
}

// TestFloorZero tests the negative clamp
func TestFloorZero(t *testing.T) {
	assert.True(t, FromDecimal(decimal.NewFromInt(-500)).FloorZero().IsZero(),
		"negative amounts clamp to zero")
	assert.Equal(t, "500.00", FromDecimal(decimal.NewFromInt(500)).FloorZero().String(),
		"positive amounts pass through")
	assert.True(t, Zero().FloorZero().IsZero())
}

// TestFormat tests the UGX currency rendering
func TestFormat(t *testing.T) {
	assert.Equal(t, "UGX 1500000.00", FromDecimal(decimal.NewFromInt(1500000)).Format())
	assert.Equal(t, "UGX -250.50", FromDecimal(decimal.NewFromFloat(-250.50)).Format())
	assert.Equal(t, "UGX 0.00", Zero().Format())
}
