package model

// BuffEffect enumerates the modifier kinds a buff can carry.
type BuffEffect string

const (
	BuffDoubleReward BuffEffect = "double_reward"
	BuffTripleReward BuffEffect = "triple_reward"
	BuffFlatBonus    BuffEffect = "flat_bonus"
	BuffTaxExemption BuffEffect = "tax_exemption"
)

func ParseBuffEffect(s string) (BuffEffect, error) {
	switch s {
	case string(BuffDoubleReward):
		return BuffDoubleReward, nil
	case string(BuffTripleReward):
		return BuffTripleReward, nil
	case string(BuffFlatBonus):
		return BuffFlatBonus, nil
	case string(BuffTaxExemption):
		return BuffTaxExemption, nil
	default:
		return "", ErrInvalidBuffEffect
	}
}

func (e BuffEffect) String() string {
	return string(e)
}

// RoleBlessing grants the additive +0.5 reward bonus.
const RoleBlessing = "blessing"

type AwardKind string

const (
	AwardKindAward    AwardKind = "award"
	AwardKindPenalize AwardKind = "penalize"
)

func ParseAwardKind(s string) (AwardKind, error) {
	switch s {
	case string(AwardKindAward):
		return AwardKindAward, nil
	case string(AwardKindPenalize):
		return AwardKindPenalize, nil
	default:
		return "", ErrInvalidAwardKind
	}
}

func (k AwardKind) String() string {
	return string(k)
}

// SlotKind discriminates the two inventory slot payload shapes: store items
// carry a quantity, skills carry a charge counter.
type SlotKind string

const (
	SlotKindItem  SlotKind = "item"
	SlotKindSkill SlotKind = "skill"
)

// OwnerKind says whether a slot hangs off a user account or a room.
type OwnerKind string

const (
	OwnerKindUser OwnerKind = "user"
	OwnerKindRoom OwnerKind = "room"
)

type SlotOrigin string

const (
	OriginPurchase SlotOrigin = "purchase"
	OriginTrade    SlotOrigin = "trade"
	OriginAuction  SlotOrigin = "auction"
	OriginRank     SlotOrigin = "rank"
	OriginTicket   SlotOrigin = "ticket_cancelled"
)

type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeCancelled TradeStatus = "cancelled"
)

type LotStatus string

const (
	LotOpen      LotStatus = "open"
	LotFinalized LotStatus = "finalized"
	LotDelivered LotStatus = "delivered"
)

type TicketStatus string

const (
	TicketActive    TicketStatus = "active"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
)
