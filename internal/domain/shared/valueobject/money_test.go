package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), INR)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, INR, m.Currency())

	_, err = NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyINRFromFloat(100.50)
	b := NewMoneyINRFromFloat(49.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))

	usd, _ := NewMoney(decimal.NewFromInt(10), USD)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoney_Subtract(t *testing.T) {
	a := NewMoneyINRFromFloat(100)
	b := NewMoneyINRFromFloat(30)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(70)))
}

func TestMoney_MultiplyByInt(t *testing.T) {
	unit := NewMoneyINRFromFloat(120)
	total := unit.MultiplyByInt(3)
	assert.True(t, total.Amount().Equal(decimal.NewFromInt(360)))
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyINRFromFloat(10)
	b := NewMoneyINRFromFloat(20)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, a.Equals(NewMoneyINRFromFloat(10)))
	assert.False(t, a.Equals(b))
}

func TestMoney_ZeroINR(t *testing.T) {
	z := ZeroINR()
	assert.True(t, z.IsZero())
	assert.False(t, z.IsPositive())
	assert.Equal(t, INR, z.Currency())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyINRFromFloat(199.99)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoney_Scan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("42.50"))
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(42.50)))
	assert.Equal(t, DefaultCurrency, m.Currency())

	var nilMoney Money
	require.NoError(t, nilMoney.Scan(nil))
	assert.True(t, nilMoney.IsZero())

	assert.Error(t, m.Scan(12345))
}
