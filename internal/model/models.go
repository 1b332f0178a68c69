package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one student's ledger entry. Balance changes only through the
// repository operations invoked by the services, never by direct writes.
type Account struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	RoomID     int64     `json:"room_id"`
	Roles      []string  `json:"roles"`
	Balance    int64     `json:"balance"`
	MaxBalance int64     `json:"max_balance"`
	Buffs      []Buff    `json:"buffs,omitempty"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasRole reports whether the account carries the given role tag.
func (a *Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Buff is a temporary or permanent modifier attached to an account.
// A nil ExpiresAt means the buff never expires. Expired buffs are filtered
// out at read time, never eagerly deleted.
type Buff struct {
	ID        int64      `json:"id"`
	AccountID int64      `json:"account_id"`
	Effect    BuffEffect `json:"effect"`
	Source    string     `json:"source"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Active reports whether the buff is live at the given instant.
func (b Buff) Active(now time.Time) bool {
	return b.ExpiresAt == nil || b.ExpiresAt.After(now)
}

// InventorySlot is one stack of a store item or one skill grant. The Kind
// field discriminates the payload: item slots use Quantity, skill slots use
// ChargesLeft/ChargesMax. For room-owned slots AcquiredBy records the student
// who brought the item in; for user slots it equals OwnerID.
type InventorySlot struct {
	ID          int64      `json:"id"`
	OwnerKind   OwnerKind  `json:"owner_kind"`
	OwnerID     int64      `json:"owner_id"`
	AcquiredBy  int64      `json:"acquired_by"`
	Kind        SlotKind   `json:"kind"`
	ItemRef     string     `json:"item_ref"`
	SkillCode   string     `json:"skill_code,omitempty"`
	Name        string     `json:"name"`
	BasePrice   int64      `json:"base_price"`
	Quantity    int        `json:"quantity"`
	ChargesLeft int        `json:"charges_left"`
	ChargesMax  int        `json:"charges_max"`
	Origin      SlotOrigin `json:"origin"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Consumable reports whether one unit or charge can still be taken.
func (s *InventorySlot) Consumable() bool {
	switch s.Kind {
	case SlotKindSkill:
		return s.ChargesLeft > 0
	default:
		return s.Quantity > 0
	}
}

// Offer is one side of a trade: currency plus inventory slot references.
// Nothing is escrowed while the negotiation is pending.
type Offer struct {
	Currency int64   `json:"currency"`
	SlotIDs  []int64 `json:"slot_ids"`
}

// Trade is a proposed two-sided exchange. Status moves one way only:
// pending to accepted, or pending to cancelled.
type Trade struct {
	ID             int64           `json:"id"`
	TradeID        string          `json:"trade_id"`
	InitiatorID    int64           `json:"initiator_id"`
	TargetID       int64           `json:"target_id"`
	OfferInitiator Offer           `json:"offer_initiator"`
	OfferTarget    Offer           `json:"offer_target"`
	FairnessRatio  decimal.Decimal `json:"fairness_ratio"`
	Status         TradeStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AuctionLot is a timed bidding process on a single item. CurrentBid starts
// at MinBid with no bidder and only ever increases. Status is monotonic:
// open, finalized, delivered.
type AuctionLot struct {
	ID              int64      `json:"id"`
	LotID           string     `json:"lot_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ItemRef         string     `json:"item_ref"`
	MinBid          int64      `json:"min_bid"`
	CurrentBid      int64      `json:"current_bid"`
	CurrentBidderID *int64     `json:"current_bidder_id,omitempty"`
	WinnerID        *int64     `json:"winner_id,omitempty"`
	BidCount        int        `json:"bid_count"`
	HouseItem       bool       `json:"house_item"`
	ValidityDays    int        `json:"validity_days"`
	EndTime         time.Time  `json:"end_time"`
	Status          LotStatus  `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Bid is one historical bid on a lot.
type Bid struct {
	ID        int64     `json:"id"`
	LotID     int64     `json:"lot_id"`
	BidderID  int64     `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// RedemptionTicket is a single-use code minted by consuming an inventory
// unit. The unit lives in exactly one place at any time: the slot, or an
// active ticket. Once used it is gone for good; cancelling recreates the
// slot.
type RedemptionTicket struct {
	ID         int64        `json:"id"`
	OwnerID    int64        `json:"owner_id"`
	Hash       string       `json:"hash"`
	SlotKind   SlotKind     `json:"slot_kind"`
	ItemRef    string       `json:"item_ref"`
	SkillCode  string       `json:"skill_code,omitempty"`
	ItemName   string       `json:"item_name"`
	BasePrice  int64        `json:"base_price"`
	RoomID     *int64       `json:"room_id,omitempty"`
	ItemExpiry *time.Time   `json:"item_expiry,omitempty"`
	Status     TicketStatus `json:"status"`
	RedeemedBy *int64       `json:"redeemed_by,omitempty"`
	RedeemedAt *time.Time   `json:"redeemed_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// AuditEntry is a write-once log line. The engine appends these alongside
// every mutation and never reads them back.
type AuditEntry struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actor_id"`
	TargetID  *int64    `json:"target_id,omitempty"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// --- request / response payloads ---

type BulkAwardRequest struct {
	AccountIDs []int64 `json:"account_ids" binding:"required,min=1"`
	Amount     int64   `json:"amount" binding:"required" example:"50"`
	Kind       string  `json:"kind" binding:"required,oneof=award penalize" enums:"award,penalize"`
	Reason     string  `json:"reason" example:"group project"`
}

type BulkAwardResponse struct {
	Status   string `json:"status" example:"success"`
	Accounts int    `json:"accounts" example:"12"`
	Message  string `json:"message,omitempty"`
}

type OfferPayload struct {
	Currency int64   `json:"currency"`
	SlotIDs  []int64 `json:"slot_ids"`
}

type TradeProposalRequest struct {
	TargetID       int64        `json:"target_id" binding:"required"`
	OfferInitiator OfferPayload `json:"offer_initiator"`
	OfferTarget    OfferPayload `json:"offer_target"`
}

type TradeResponse struct {
	TradeID       string `json:"trade_id"`
	Status        string `json:"status"`
	FairnessRatio string `json:"fairness_ratio,omitempty"`
	Message       string `json:"message,omitempty"`
}

type CreateLotRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ItemRef      string `json:"item_ref" binding:"required"`
	MinBid       int64  `json:"min_bid" binding:"required"`
	EndTime      string `json:"end_time" binding:"required" example:"2026-09-30T18:00:00Z"`
	HouseItem    bool   `json:"house_item"`
	ValidityDays int    `json:"validity_days"`
}

type UpdateLotRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	MinBid      *int64  `json:"min_bid,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
}

type BidRequest struct {
	Amount int64 `json:"amount" binding:"required" example:"350"`
}

type CloseLotResponse struct {
	Status   string `json:"status" example:"finalized"`
	WinnerID *int64 `json:"winner_id,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
	Message  string `json:"message,omitempty"`
}

type IssueTicketRequest struct {
	SlotID int64 `json:"slot_id" binding:"required"`
}

type RedeemTicketRequest struct {
	Hash string `json:"hash" binding:"required" example:"A3F19C"`
}

type TicketResponse struct {
	Hash     string `json:"hash,omitempty"`
	Status   string `json:"status"`
	ItemName string `json:"item_name,omitempty"`
	Message  string `json:"message,omitempty"`
}

type TransferRequest struct {
	TargetID     int64 `json:"target_id" binding:"required"`
	Amount       int64 `json:"amount" binding:"required" example:"100"`
	UseExemption bool  `json:"use_exemption"`
}

type TransferResponse struct {
	Status     string `json:"status" example:"success"`
	NewBalance int64  `json:"new_balance"`
	FeePaid    int64  `json:"fee_paid"`
	Message    string `json:"message,omitempty"`
}

type BalanceResponse struct {
	AccountID int64 `json:"account_id" example:"1"`
	Balance   int64 `json:"balance" example:"1250"`
}

type MultiplierResponse struct {
	AccountID  int64  `json:"account_id" example:"1"`
	Multiplier string `json:"multiplier" example:"2.5"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}
