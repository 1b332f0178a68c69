package skills

import "economy-engine/internal/model"

// Rank is one step of the prestige ladder. Ranks are keyed off the
// historical maximum balance, so losing currency never demotes anyone.
type Rank struct {
	ID   string
	Name string
	Min  int64
}

// Ranks is ordered by ascending threshold.
var Ranks = []Rank{
	{ID: "BEGINNER", Name: "Beginner", Min: 0},
	{ID: "BRONZE", Name: "Bronze", Min: 1000},
	{ID: "SILVER", Name: "Silver", Min: 1500},
	{ID: "GOLD", Name: "Gold", Min: 2000},
	{ID: "DIAMOND", Name: "Diamond", Min: 2500},
	{ID: "EPIC", Name: "Epic", Min: 3000},
	{ID: "LEGENDARY", Name: "Legendary", Min: 5000},
	{ID: "SUPREME", Name: "Supreme", Min: 10000},
	{ID: "MYTHIC", Name: "Mythic", Min: 20000},
	{ID: "SOVEREIGN", Name: "Sovereign", Min: 50000},
}

// RankFor returns the highest rank whose threshold the given historical
// maximum has reached.
func RankFor(maxBalance int64) Rank {
	best := Ranks[0]
	for _, r := range Ranks[1:] {
		if maxBalance >= r.Min {
			best = r
		}
	}
	return best
}

// SkillKind splits the catalog into passive perks, which ride along as
// buffs, and active skills, which occupy an inventory slot with a charge
// counter.
type SkillKind string

const (
	KindPassive SkillKind = "passive"
	KindActive  SkillKind = "active"
)

// Skill is one catalog entry. Effect is only meaningful for the passive
// entries that feed the reward multiplier or waive transfer fees; other
// passives are perks tracked outside the engine and carry no effect here.
type Skill struct {
	Code    string
	Name    string
	Kind    SkillKind
	Effect  model.BuffEffect
	Charges int
}

const defaultCharges = 3

// Catalog maps rank IDs to the skills unlocked at that rank. Unlocks
// accumulate: a Gold account holds the Bronze and Silver skills too.
var Catalog = map[string][]Skill{
	"BRONZE": {
		{Code: "vip_card", Name: "VIP Card", Kind: KindActive, Charges: defaultCharges},
		{Code: "vip_session", Name: "VIP Session", Kind: KindActive, Charges: defaultCharges},
	},
	"SILVER": {
		{Code: "divine_hint", Name: "Divine Hint", Kind: KindActive, Charges: defaultCharges},
	},
	"GOLD": {
		{Code: "gold_bonus", Name: "Gold Bonus", Kind: KindPassive, Effect: model.BuffFlatBonus},
	},
	"DIAMOND": {
		{Code: "diamond_raffle", Name: "Diamond Raffle", Kind: KindActive, Charges: defaultCharges},
	},
	"EPIC": {
		{Code: "damage_reduction", Name: "Damage Reduction", Kind: KindActive, Charges: defaultCharges},
		{Code: "deadline_shield", Name: "Deadline Shield", Kind: KindActive, Charges: defaultCharges},
	},
	"LEGENDARY": {
		{Code: "late_immunity", Name: "Late Immunity", Kind: KindActive, Charges: defaultCharges},
		{Code: "tax_exemption", Name: "Tax Exemption", Kind: KindActive, Charges: defaultCharges},
	},
	"SUPREME": {
		{Code: "supreme_aid", Name: "Supreme Aid", Kind: KindActive, Charges: defaultCharges},
		{Code: "auction_discount", Name: "Auction Discount", Kind: KindActive, Charges: defaultCharges},
	},
	"MYTHIC": {
		{Code: "reward_doubler", Name: "Reward Doubler", Kind: KindPassive, Effect: model.BuffDoubleReward},
		{Code: "unlimited_aid", Name: "Unlimited Aid", Kind: KindActive, Charges: defaultCharges},
	},
	"SOVEREIGN": {
		{Code: "reward_tripler", Name: "Reward Tripler", Kind: KindPassive, Effect: model.BuffTripleReward},
		{Code: "phoenix_power", Name: "Phoenix Power", Kind: KindActive, Charges: defaultCharges},
	},
}

// Unlocked returns every skill reachable at the given historical maximum,
// in ladder order.
func Unlocked(maxBalance int64) []Skill {
	var out []Skill
	for _, r := range Ranks {
		if maxBalance < r.Min {
			break
		}
		out = append(out, Catalog[r.ID]...)
	}
	return out
}
