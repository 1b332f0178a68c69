package model

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient balance")

	ErrAccountNotFound = errors.New("account not found")
	ErrSlotNotFound    = errors.New("inventory slot not found")
	ErrTradeNotFound   = errors.New("trade not found")
	ErrLotNotFound     = errors.New("auction lot not found")
	ErrTicketNotFound  = errors.New("ticket not found")

	// ErrInvalidState means the requested transition is not legal from the
	// record's current status (closed lot, settled trade, used ticket).
	ErrInvalidState = errors.New("invalid state for this operation")

	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidAwardKind  = errors.New("invalid award kind")
	ErrInvalidBuffEffect = errors.New("invalid buff effect")
	ErrItemNotOwned      = errors.New("offer contains an item you no longer own")
	ErrSkillNotTradable  = errors.New("skills cannot be traded")
	ErrUnfairTrade       = errors.New("trade offers are too unbalanced")
	ErrNotParticipant    = errors.New("account is not a party to this negotiation")
	ErrBidTooLow         = errors.New("bid must exceed the current highest bid")
	ErrSelfTarget        = errors.New("cannot target your own account")
	ErrNoExemption       = errors.New("no tax exemption charge available")

	// ErrConflict surfaces a lost commit race; safe for the caller to retry
	// after a fresh read.
	ErrConflict = errors.New("concurrent update conflict")

	ErrStoreUnavailable = errors.New("store unavailable")
)
