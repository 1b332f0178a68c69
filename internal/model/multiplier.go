package model

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	multBase   = decimal.NewFromInt(1)
	multDouble = decimal.NewFromInt(2)
	multTriple = decimal.NewFromInt(3)
	bonusHalf  = decimal.RequireFromString("0.5")
)

// ActiveBuffs returns the buffs still live at the given instant. Expiry is
// lazy: expired rows stay in the store and are filtered on every read, so a
// stored "active" flag is never trusted.
func (a *Account) ActiveBuffs(now time.Time) []Buff {
	var active []Buff
	for _, b := range a.Buffs {
		if b.Active(now) {
			active = append(active, b)
		}
	}
	return active
}

// ResolveMultiplier computes the reward multiplier for an account at the
// given instant. Triple-reward dominates double-reward; the tiers never
// stack. The blessing role, or an active flat-bonus buff, adds 0.5 on top of
// whichever base applies (at most once).
//
// The result is derived from scratch on every call because buffs expire;
// callers must not cache it.
func ResolveMultiplier(a *Account, now time.Time) decimal.Decimal {
	var hasTriple, hasDouble, hasFlat bool
	for _, b := range a.ActiveBuffs(now) {
		switch b.Effect {
		case BuffTripleReward:
			hasTriple = true
		case BuffDoubleReward:
			hasDouble = true
		case BuffFlatBonus:
			hasFlat = true
		}
	}

	mult := multBase
	if hasTriple {
		mult = multTriple
	} else if hasDouble {
		mult = multDouble
	}

	if a.HasRole(RoleBlessing) || hasFlat {
		mult = mult.Add(bonusHalf)
	}
	return mult
}
