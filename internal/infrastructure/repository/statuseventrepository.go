package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/infrastructure/persistence/mappers"
	"devicedesk/internal/infrastructure/persistence/models"
	db "devicedesk/internal/shared/db"
)

type StatusEventRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStatusEventRepository(db *gorm.DB) *StatusEventRepository {
	return &StatusEventRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *StatusEventRepository) Append(ctx context.Context, event *ticket.StatusEvent) error {
	model := r.mapper.StatusEventToModel(event)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status event: %w", err)
	}

	return event.SetID(model.ID)
}

func (r *StatusEventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusEvent, error) {
	var eventModels []models.StatusEventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list status events: %w", err)
	}

	events := make([]*ticket.StatusEvent, len(eventModels))
	for i, model := range eventModels {
		event, err := r.mapper.StatusEventToDomain(&model)
		if err != nil {
			return nil, err
		}
		events[i] = event
	}

	return events, nil
}
