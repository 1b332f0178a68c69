package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"economy-engine/internal/model"
	"economy-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ticketHashRetries bounds how many fresh codes Issue mints before giving
// up on collisions. With a 24-bit code space this should never trip in
// practice.
const ticketHashRetries = 5

type TicketServiceImpl struct {
	accountRepo   repository.AccountRepository
	inventoryRepo repository.InventoryRepository
	ticketRepo    repository.TicketRepository
	auditRepo     repository.AuditRepository
	dbManager     repository.DBManager
	logger        zerolog.Logger
}

func NewTicketService(
	accountRepo repository.AccountRepository,
	inventoryRepo repository.InventoryRepository,
	ticketRepo repository.TicketRepository,
	auditRepo repository.AuditRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) TicketService {
	return &TicketServiceImpl{
		accountRepo:   accountRepo,
		inventoryRepo: inventoryRepo,
		ticketRepo:    ticketRepo,
		auditRepo:     auditRepo,
		dbManager:     dbManager,
		logger:        logger,
	}
}

// newTicketHash mints a 6 character uppercase hex code.
func newTicketHash() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// Issue converts one unit or charge of an owned slot into a redemption
// ticket. The consumed unit is carried by the ticket from here on: a later
// Cancel restores it, a Redeem settles it for good.
func (s *TicketServiceImpl) Issue(ctx context.Context, slotID, ownerID int64) (*model.TicketResponse, error) {
	var ticket *model.RedemptionTicket

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		owner, err := s.accountRepo.GetAccount(ctx, ownerID, tx)
		if err != nil {
			return fmt.Errorf("get owner: %w", err)
		}

		slot, err := s.inventoryRepo.GetSlotForUpdate(ctx, slotID, tx)
		if err != nil {
			return fmt.Errorf("get slot for update: %w", err)
		}
		if !heldBy(slot, owner.ID) {
			return model.ErrItemNotOwned
		}
		if !slot.Consumable() {
			return fmt.Errorf("%w: nothing left to redeem", model.ErrInvalidState)
		}

		switch slot.Kind {
		case model.SlotKindSkill:
			if err := s.inventoryRepo.AdjustCharges(ctx, slot.ID, -1, tx); err != nil {
				return fmt.Errorf("consume charge: %w", err)
			}
		default:
			if err := s.inventoryRepo.AdjustQuantity(ctx, slot.ID, -1, tx); err != nil {
				return fmt.Errorf("consume unit: %w", err)
			}
		}

		ticket = &model.RedemptionTicket{
			OwnerID:    ownerID,
			SlotKind:   slot.Kind,
			ItemRef:    slot.ItemRef,
			SkillCode:  slot.SkillCode,
			ItemName:   slot.Name,
			BasePrice:  slot.BasePrice,
			ItemExpiry: slot.ExpiresAt,
			Status:     model.TicketActive,
		}
		if slot.OwnerKind == model.OwnerKindRoom {
			roomID := slot.OwnerID
			ticket.RoomID = &roomID
		}

		for attempt := 0; ; attempt++ {
			hash, err := newTicketHash()
			if err != nil {
				return err
			}
			ticket.Hash = hash
			err = s.ticketRepo.InsertTicket(ctx, ticket, tx)
			if err == nil {
				break
			}
			if !errors.Is(err, model.ErrConflict) || attempt+1 >= ticketHashRetries {
				return fmt.Errorf("insert ticket: %w", err)
			}
		}

		return s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID: ownerID,
			Action:  "TICKET_ISSUED",
			Detail:  fmt.Sprintf("Ticket %s for %s", ticket.Hash, ticket.ItemName),
		}, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("owner_id", ownerID).Str("hash", ticket.Hash).Msg("ticket issued")
	return &model.TicketResponse{
		Hash:     ticket.Hash,
		Status:   string(ticket.Status),
		ItemName: ticket.ItemName,
	}, nil
}

// Redeem settles an active ticket by its code. A ticket settles at most
// once; a second presentation of the same code fails.
func (s *TicketServiceImpl) Redeem(ctx context.Context, hash string, operatorID int64) (*model.TicketResponse, error) {
	hash = strings.ToUpper(strings.TrimSpace(hash))
	var ticket *model.RedemptionTicket

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		ticket, err = s.ticketRepo.GetByHashForUpdate(ctx, hash, tx)
		if err != nil {
			return fmt.Errorf("get ticket for update: %w", err)
		}
		if ticket.Status != model.TicketActive {
			return fmt.Errorf("%w: ticket is %s", model.ErrInvalidState, ticket.Status)
		}

		ok, err := s.ticketRepo.SetStatusIfActive(ctx, ticket.ID, model.TicketUsed, &operatorID, tx)
		if err != nil {
			return fmt.Errorf("mark ticket used: %w", err)
		}
		if !ok {
			return model.ErrConflict
		}
		ticket.Status = model.TicketUsed

		return s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID:  operatorID,
			TargetID: &ticket.OwnerID,
			Action:   "TICKET_REDEEMED",
			Detail:   fmt.Sprintf("Ticket %s (%s) redeemed", ticket.Hash, ticket.ItemName),
		}, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("hash", hash).Int64("operator_id", operatorID).Msg("ticket redeemed")
	return &model.TicketResponse{
		Hash:     ticket.Hash,
		Status:   string(ticket.Status),
		ItemName: ticket.ItemName,
	}, nil
}

// Cancel voids an active ticket and returns the consumed unit to the
// owner's inventory as a fresh slot.
func (s *TicketServiceImpl) Cancel(ctx context.Context, ticketID, ownerID int64) (*model.TicketResponse, error) {
	var ticket *model.RedemptionTicket

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		ticket, err = s.ticketRepo.GetTicketForUpdate(ctx, ticketID, tx)
		if err != nil {
			return fmt.Errorf("get ticket for update: %w", err)
		}
		if ticket.OwnerID != ownerID {
			return model.ErrNotParticipant
		}
		if ticket.Status != model.TicketActive {
			return fmt.Errorf("%w: ticket is %s", model.ErrInvalidState, ticket.Status)
		}

		ok, err := s.ticketRepo.SetStatusIfActive(ctx, ticket.ID, model.TicketCancelled, nil, tx)
		if err != nil {
			return fmt.Errorf("mark ticket cancelled: %w", err)
		}
		if !ok {
			return model.ErrConflict
		}
		ticket.Status = model.TicketCancelled

		slot := &model.InventorySlot{
			OwnerKind:  model.OwnerKindUser,
			OwnerID:    ticket.OwnerID,
			AcquiredBy: ticket.OwnerID,
			Kind:       ticket.SlotKind,
			ItemRef:    ticket.ItemRef,
			SkillCode:  ticket.SkillCode,
			Name:       ticket.ItemName,
			BasePrice:  ticket.BasePrice,
			Origin:     model.OriginTicket,
			ExpiresAt:  ticket.ItemExpiry,
		}
		if ticket.RoomID != nil {
			slot.OwnerKind = model.OwnerKindRoom
			slot.OwnerID = *ticket.RoomID
		}
		if ticket.SlotKind == model.SlotKindSkill {
			slot.ChargesLeft = 1
			slot.ChargesMax = 1
		} else {
			slot.Quantity = 1
		}
		if err := s.inventoryRepo.InsertSlot(ctx, slot, tx); err != nil {
			return fmt.Errorf("restore slot: %w", err)
		}

		return s.auditRepo.Append(ctx, &model.AuditEntry{
			ActorID: ownerID,
			Action:  "TICKET_CANCELLED",
			Detail:  fmt.Sprintf("Ticket %s (%s) cancelled, item returned", ticket.Hash, ticket.ItemName),
		}, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("ticket_id", ticketID).Msg("ticket cancelled")
	return &model.TicketResponse{
		Hash:     ticket.Hash,
		Status:   string(ticket.Status),
		ItemName: ticket.ItemName,
		Message:  "item returned to inventory",
	}, nil
}

func (s *TicketServiceImpl) ListMine(ctx context.Context, ownerID int64) ([]*model.RedemptionTicket, error) {
	tickets, err := s.ticketRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}
