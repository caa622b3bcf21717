package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyGrowthFactor(t *testing.T) {
	cases := []struct {
		apr  string
		want string
	}{
		{"24", "1.02"},
		{"12", "1.01"},
		{"18", "1.015"},
		{"0", "1"},
	}
	for _, c := range cases {
		got := MonthlyGrowthFactor(decimal.RequireFromString(c.apr))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "apr %s: got %s want %s", c.apr, got, c.want)
	}
}

func TestFloorZero(t *testing.T) {
	assert.True(t, FloorZero(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, FloorZero(decimal.NewFromInt(7)).Equal(decimal.NewFromInt(7)))
	assert.True(t, FloorZero(decimal.Zero).IsZero())
}

func TestMinMaxSum(t *testing.T) {
	a := decimal.NewFromInt(10)
	b := decimal.NewFromInt(20)

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Sum([]decimal.Decimal{a, b, a}).Equal(decimal.NewFromInt(40)))
	assert.True(t, Sum(nil).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$12.35", Format(decimal.RequireFromString("12.345")))
	assert.Equal(t, "$1234.50", Format(decimal.RequireFromString("1234.5")))
}
