package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCurrencyCycle(t *testing.T) {
	t.Parallel()

	// first button: EUR -> USD -> GBP -> EUR
	require.Equal(t, USD, EUR.Next())
	require.Equal(t, GBP, USD.Next())
	require.Equal(t, EUR, GBP.Next())

	// second button: EUR -> GBP, USD -> EUR, GBP -> USD
	require.Equal(t, GBP, EUR.Prev())
	require.Equal(t, EUR, USD.Prev())
	require.Equal(t, USD, GBP.Prev())

	// both buttons only ever land on an alternate, never the active one
	for _, c := range Currencies() {
		require.NotEqual(t, c, c.Next())
		require.NotEqual(t, c, c.Prev())
		require.NotEqual(t, c.Next(), c.Prev())
	}
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	got, err := ParseCurrency("GBP")
	require.NoError(t, err)
	require.Equal(t, GBP, got)

	_, err = ParseCurrency("Libras")
	require.Error(t, err)
}

func TestPriceScaleRoundsPerCurrency(t *testing.T) {
	t.Parallel()

	p := NewPrice(dec("8.00"), dec("9.36"), dec("6.96"))
	adjusted := p.Scale(dec("0.6"))

	require.True(t, dec("4.80").Equal(adjusted.EUR), "EUR=%s", adjusted.EUR)
	require.True(t, dec("5.62").Equal(adjusted.USD), "USD=%s", adjusted.USD)
	require.True(t, dec("4.18").Equal(adjusted.GBP), "GBP=%s", adjusted.GBP)
}

func TestPriceAddMulZero(t *testing.T) {
	t.Parallel()

	unit := NewPrice(dec("2.50"), dec("2.93"), dec("2.18"))
	total := Zero().Add(unit.MulInt(2))

	require.True(t, dec("5.00").Equal(total.EUR))
	require.True(t, dec("5.86").Equal(total.USD))
	require.True(t, dec("4.36").Equal(total.GBP))
	require.False(t, total.IsZero())
	require.True(t, Zero().IsZero())
}

func TestPriceAmountBySelectedCurrency(t *testing.T) {
	t.Parallel()

	p := NewPrice(dec("1"), dec("2"), dec("3"))
	require.True(t, dec("1").Equal(p.Amount(EUR)))
	require.True(t, dec("2").Equal(p.Amount(USD)))
	require.True(t, dec("3").Equal(p.Amount(GBP)))
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	t.Parallel()

	require.True(t, dec("2.35").Equal(Round2(dec("2.345"))))
	require.True(t, dec("2.80").Equal(Round2(dec("2.8000"))))
}
