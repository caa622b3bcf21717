package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		apr     string
		min     string
		max     *decimal.Decimal
		actual  *decimal.Decimal
		wantErr error
	}{
		{name: "valid", balance: "1000", apr: "24", min: "25"},
		{name: "max equals balance", balance: "1000", apr: "24", min: "25", max: dp("1000")},
		{name: "actual above balance is clamped later", balance: "100", apr: "24", min: "25", actual: dp("250")},
		{name: "zero balance", balance: "0", apr: "24", min: "25", wantErr: ErrInvalidBalance},
		{name: "negative apr", balance: "1000", apr: "-1", min: "25", wantErr: ErrInvalidAPR},
		{name: "min equals balance", balance: "1000", apr: "24", min: "1000", wantErr: ErrInvalidMinPayment},
		{name: "zero min", balance: "1000", apr: "24", min: "0", wantErr: ErrInvalidMinPayment},
		{name: "max below min", balance: "1000", apr: "24", min: "25", max: dp("10"), wantErr: ErrInvalidMaxPayment},
		{name: "max above balance", balance: "1000", apr: "24", min: "25", max: dp("1001"), wantErr: ErrInvalidMaxPayment},
		{name: "zero actual", balance: "1000", apr: "24", min: "25", actual: dp("0"), wantErr: ErrInvalidActualPayment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAccount("card", d(tt.balance), d(tt.apr), d(tt.min), tt.max, tt.actual)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "card", a.Nickname)
		})
	}
}

func TestEffectiveActualPayment(t *testing.T) {
	a := Account{MinPayment: d("25")}
	assert.True(t, a.EffectiveActualPayment().Equal(d("25")))
	a.ActualPayment = dp("40")
	assert.True(t, a.EffectiveActualPayment().Equal(d("40")))
}

func TestRequestValidate(t *testing.T) {
	card := Account{Nickname: "a", Balance: d("100"), APR: d("10"), MinPayment: d("5")}

	assert.NoError(t, (&Request{Budget: d("10"), Cards: []Account{card}}).Validate())
	assert.ErrorIs(t, (&Request{Budget: d("0"), Cards: []Account{card}}).Validate(), ErrInvalidBudget)
	assert.ErrorIs(t, (&Request{Budget: d("10")}).Validate(), ErrNoAccounts)

	bad := card
	bad.APR = decimal.Zero
	err := (&Request{Budget: d("10"), Cards: []Account{card, bad}}).Validate()
	assert.ErrorIs(t, err, ErrInvalidAPR)
	assert.Contains(t, err.Error(), "card 1")
}

func TestAccountUnmarshalYAML(t *testing.T) {
	src := `
cardNickName: travel
cardBalance: 1000.50
cardApr: "24.99"
minPayment: 25
maxPayment: 500
`
	var a Account
	require.NoError(t, yaml.Unmarshal([]byte(src), &a))
	assert.Equal(t, "travel", a.Nickname)
	assert.True(t, a.Balance.Equal(d("1000.5")))
	assert.True(t, a.APR.Equal(d("24.99")))
	require.NotNil(t, a.MaxPayment)
	assert.True(t, a.MaxPayment.Equal(d("500")))
	assert.Nil(t, a.ActualPayment)

	err := yaml.Unmarshal([]byte("cardNickName: x\nactualPayments: lots\n"), &a)
	assert.ErrorContains(t, err, "actualPayments")
}

func TestComparisonReportHelpers(t *testing.T) {
	r := &ComparisonReport{Progress: []CardProjection{
		{Nickname: "a", Projection: []MonthProjection{
			{Month: "May", NextBalanceOnMin: d("10"), NextBalanceOnCurrentPayment: d("9"), NextBalanceOnSuggested: d("8")},
		}},
		{Nickname: "b", Projection: []MonthProjection{
			{Month: "May", NextBalanceOnMin: d("1"), NextBalanceOnCurrentPayment: d("1"), NextBalanceOnSuggested: d("1")},
		}},
	}}
	onMin, onCurrent, onSuggested := r.Totals(0)
	assert.True(t, onMin.Equal(d("11")))
	assert.True(t, onCurrent.Equal(d("10")))
	assert.True(t, onSuggested.Equal(d("9")))
	assert.Equal(t, []string{"May"}, r.Months())

	onMin, _, _ = r.Totals(5)
	assert.True(t, onMin.IsZero())
	assert.Nil(t, (&ComparisonReport{}).Months())
}

func TestMonthProjectionJSON(t *testing.T) {
	m := MonthProjection{Month: "October", NextBalanceOnMin: d("1000"), NextBalanceOnCurrentPayment: d("990.5"), NextBalanceOnSuggested: d("0")}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"October":{"nextBalanceOnMin":"1000","nextBalanceOnCurrentPayment":"990.5","nextBalanceOnSuggested":"0"}}`, string(data))

	var back MonthProjection
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "October", back.Month)
	assert.True(t, back.NextBalanceOnCurrentPayment.Equal(d("990.5")))

	report := ComparisonReport{Progress: []CardProjection{{Nickname: "A", Projection: []MonthProjection{m}}}}
	data, err = json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"progress":[{"cardNickName":"A","projection":[{"October":{"nextBalanceOnMin":"1000","nextBalanceOnCurrentPayment":"990.5","nextBalanceOnSuggested":"0"}}]}]}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"October":{},"November":{}}`), &back))
}
