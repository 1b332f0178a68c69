package model

import "github.com/shopspring/decimal"

// OfferTotal is the advisory value of one trade side: offered currency plus
// the base prices of every offered slot.
func OfferTotal(currency int64, slots []*InventorySlot) int64 {
	total := currency
	for _, s := range slots {
		total += s.BasePrice
	}
	return total
}

// FairnessRatio measures how balanced two offer totals are, as
// min(a,b)/max(a,b) in [0,1]. Two empty offers are considered perfectly
// fair; one empty side against a non-empty one is maximally unfair.
func FairnessRatio(totalA, totalB int64) decimal.Decimal {
	lo, hi := totalA, totalB
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return decimal.NewFromInt(1)
	}
	if lo == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(lo).DivRound(decimal.NewFromInt(hi), 4)
}
