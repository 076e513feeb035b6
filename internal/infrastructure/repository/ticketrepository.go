package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		tx = tx.Where("category = ?", filter.Category.String())
	}

	var rows []models.TicketModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id uint, status vo.TicketStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

// AppendNote appends a note to the ticket's JSON note column. The row is
// locked for the duration of the transaction so concurrent appends to the
// same ticket cannot overwrite each other.
func (r *TicketRepository) AppendNote(ctx context.Context, id uint, note ticket.Note) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		var model models.TicketModel
		if err := inner.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("ticket not found")
			}
			return fmt.Errorf("failed to lock ticket: %w", err)
		}

		var notes []ticket.Note
		if len(model.Notes) > 0 {
			if err := json.Unmarshal(model.Notes, &notes); err != nil {
				return fmt.Errorf("failed to unmarshal ticket notes (id=%d): %w", id, err)
			}
		}
		notes = append(notes, note)

		notesJSON, err := json.Marshal(notes)
		if err != nil {
			return fmt.Errorf("failed to marshal ticket notes: %w", err)
		}

		if err := inner.
			Model(&models.TicketModel{}).
			Where("id = ?", id).
			Update("notes", datatypes.JSON(notesJSON)).Error; err != nil {
			return fmt.Errorf("failed to append ticket note: %w", err)
		}
		return nil
	})
}
