package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveMultiplier_Base(t *testing.T) {
	acc := &Account{ID: 1}
	mult := ResolveMultiplier(acc, time.Now())
	assert.Equal(t, "1", mult.String())
}

func TestResolveMultiplier_Double(t *testing.T) {
	acc := &Account{ID: 1, Buffs: []Buff{{Effect: BuffDoubleReward}}}
	mult := ResolveMultiplier(acc, time.Now())
	assert.Equal(t, "2", mult.String())
}

func TestResolveMultiplier_TripleDominatesDouble(t *testing.T) {
	acc := &Account{ID: 1, Buffs: []Buff{
		{Effect: BuffDoubleReward},
		{Effect: BuffTripleReward},
	}}
	mult := ResolveMultiplier(acc, time.Now())
	assert.Equal(t, "3", mult.String())
}

func TestResolveMultiplier_BlessingAddsHalf(t *testing.T) {
	acc := &Account{ID: 1, Roles: []string{RoleBlessing}}
	mult := ResolveMultiplier(acc, time.Now())
	assert.Equal(t, "1.5", mult.String())
}

func TestResolveMultiplier_TripleWithBlessing(t *testing.T) {
	acc := &Account{
		ID:    1,
		Roles: []string{"student", RoleBlessing},
		Buffs: []Buff{{Effect: BuffTripleReward}},
	}
	mult := ResolveMultiplier(acc, time.Now())
	assert.Equal(t, "3.5", mult.String())
}

func TestResolveMultiplier_BonusAppliedOnce(t *testing.T) {
	// Blessing role and a flat-bonus buff together still add only 0.5.
	acc := &Account{
		ID:    1,
		Roles: []string{RoleBlessing},
		Buffs: []Buff{{Effect: BuffFlatBonus}, {Effect: BuffDoubleReward}},
	}
	mult := ResolveMultiplier(acc, time.Now())
	assert.Equal(t, "2.5", mult.String())
}

func TestResolveMultiplier_ExpiredBuffIgnored(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	acc := &Account{ID: 1, Buffs: []Buff{
		{Effect: BuffTripleReward, ExpiresAt: &past},
		{Effect: BuffDoubleReward, ExpiresAt: &future},
	}}
	mult := ResolveMultiplier(acc, now)
	assert.Equal(t, "2", mult.String())
}

func TestActiveBuffs_FiltersExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	acc := &Account{ID: 1, Buffs: []Buff{
		{Effect: BuffDoubleReward, ExpiresAt: &past},
		{Effect: BuffTaxExemption},
	}}

	active := acc.ActiveBuffs(now)
	assert.Len(t, active, 1)
	assert.Equal(t, BuffTaxExemption, active[0].Effect)
	// The expired row is left in place for the next read to filter again.
	assert.Len(t, acc.Buffs, 2)
}
