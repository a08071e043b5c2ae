package domain

import "github.com/shopspring/decimal"

// CoinDecimals is the number of fractional digits of the main unit.
const CoinDecimals = 8

// Coin is an amount expressed in the smallest unit of the currency.
type Coin int64

const (
	// Satoshi is the indivisible base denomination.
	Satoshi Coin = 1
	// OneCoin is one main unit.
	OneCoin Coin = 100_000_000
)

// Decimal returns the amount in main units.
func (c Coin) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -CoinDecimals)
}

// PlainString formats the amount in main units without exponent and without
// trailing zeros, e.g. "0.00000001" or "21000000".
func (c Coin) PlainString() string {
	return c.Decimal().String()
}

// CoinFromDecimal converts an amount in main units to a Coin. The second
// return value is false if the amount is not a whole number of smallest units.
func CoinFromDecimal(d decimal.Decimal) (Coin, bool) {
	shifted := d.Shift(CoinDecimals)
	if !shifted.IsInteger() {
		return 0, false
	}
	return Coin(shifted.IntPart()), true
}
