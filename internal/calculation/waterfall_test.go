package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func card(balance, apr, payment string) WorkingCard {
	return WorkingCard{Balance: dec(balance), APR: dec(apr), Payment: dec(payment)}
}

func totalPayment(cards []WorkingCard) decimal.Decimal {
	total := decimal.Zero
	for _, c := range cards {
		total = total.Add(c.Payment)
	}
	return total
}

func TestReallocateRoutesOverflowByAPR(t *testing.T) {
	in := []WorkingCard{
		card("50", "15", "100"),  // overpaid by 50
		card("500", "12", "20"),  // lower APR
		card("400", "24", "30"),  // highest APR gets the overflow
	}
	res := Reallocate(in)

	assert.True(t, res.Overflow.Equal(dec("50")))
	assert.True(t, res.Unspent.IsZero())
	assert.True(t, res.Cards[0].Payment.Equal(dec("50")))
	assert.True(t, res.Cards[1].Payment.Equal(dec("20")))
	assert.True(t, res.Cards[2].Payment.Equal(dec("80")))
	assert.True(t, totalPayment(res.Cards).Equal(totalPayment(in)))

	// input untouched
	assert.True(t, in[0].Payment.Equal(dec("100")))
}

func TestReallocateSpillsAcrossAccounts(t *testing.T) {
	in := []WorkingCard{
		card("0", "20", "150"),
		card("60", "22", "40"),  // room 20
		card("300", "18", "25"), // takes the rest
	}
	res := Reallocate(in)

	assert.True(t, res.Overflow.Equal(dec("150")))
	assert.True(t, res.Cards[0].Payment.IsZero())
	assert.True(t, res.Cards[1].Payment.Equal(dec("60")))
	assert.True(t, res.Cards[2].Payment.Equal(dec("155")))
	assert.True(t, res.Unspent.IsZero())
	assert.True(t, totalPayment(res.Cards).Equal(totalPayment(in)))
}

func TestReallocatePoolExceedsRoom(t *testing.T) {
	in := []WorkingCard{
		card("10", "20", "500"),
		card("100", "25", "50"),
	}
	res := Reallocate(in)

	assert.True(t, res.Cards[0].Payment.Equal(dec("10")))
	assert.True(t, res.Cards[1].Payment.Equal(dec("100")))
	assert.True(t, res.Unspent.Equal(dec("440")))
	assert.True(t, totalPayment(res.Cards).Add(res.Unspent).Equal(totalPayment(in)))
	for _, c := range res.Cards {
		assert.True(t, c.Payment.LessThanOrEqual(c.Balance))
	}
}

func TestReallocateEqualAPRKeepsInputOrder(t *testing.T) {
	in := []WorkingCard{
		card("20", "19", "70"),
		card("100", "19", "10"),
		card("100", "19", "10"),
	}
	res := Reallocate(in)

	assert.True(t, res.Cards[1].Payment.Equal(dec("60")))
	assert.True(t, res.Cards[2].Payment.Equal(dec("10")))
}

func TestReallocateExactPayoffIsNotOverflow(t *testing.T) {
	in := []WorkingCard{
		card("100", "20", "100"),
		card("300", "10", "30"),
	}
	res := Reallocate(in)

	assert.True(t, res.Overflow.IsZero())
	assert.True(t, res.Cards[1].Payment.Equal(dec("30")))
}

func TestReallocateNoOverflow(t *testing.T) {
	in := []WorkingCard{card("1000", "20", "50"), card("500", "25", "40")}
	res := Reallocate(in)
	assert.Equal(t, in, res.Cards)
	assert.True(t, res.Overflow.IsZero())
}
