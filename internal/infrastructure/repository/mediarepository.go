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

type MediaRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MediaRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	var mediaModels []models.MediaModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&mediaModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	media := make([]*ticket.Media, len(mediaModels))
	for i, model := range mediaModels {
		item, err := r.mapper.MediaToDomain(&model)
		if err != nil {
			return nil, err
		}
		media[i] = item
	}

	return media, nil
}
