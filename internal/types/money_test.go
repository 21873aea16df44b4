package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApproxZero(t *testing.T) {
	assert.True(t, ApproxZero(decimal.Zero))
	assert.True(t, ApproxZero(decimal.NewFromFloat(0.005)))
	assert.True(t, ApproxZero(decimal.NewFromFloat(-0.005)))
	assert.True(t, ApproxZero(decimal.NewFromFloat(0.01)))
	assert.False(t, ApproxZero(decimal.NewFromFloat(0.02)))
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(decimal.NewFromFloat(10.00), decimal.NewFromFloat(10.005)))
	assert.False(t, ApproxEqual(decimal.NewFromFloat(10.00), decimal.NewFromFloat(10.02)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$35.00", FormatAmount(decimal.NewFromInt(35)))
	assert.Equal(t, "$0.50", FormatAmount(decimal.NewFromFloat(0.5)))
}
