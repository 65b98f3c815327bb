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

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MessageRepository) Append(ctx context.Context, message *ticket.Message) error {
	model := r.mapper.MessageToModel(message)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return message.SetID(model.ID)
}

func (r *MessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var messageModels []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*ticket.Message, len(messageModels))
	for i, model := range messageModels {
		message, err := r.mapper.MessageToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = message
	}

	return messages, nil
}
