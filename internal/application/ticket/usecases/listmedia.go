package usecases

import (
	"context"
	stderrors "errors"

	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
)

type ListMediaQuery struct {
	Kind     workflow.Kind
	TenantID uint
	TicketID uint
}

type ListMediaResult struct {
	Media []MediaDTO `json:"media"`
}

type ListMediaUseCase struct {
	ticketRepo ticket.TicketRepository
	mediaRepo  ticket.MediaRepository
	logger     logger.Interface
}

func NewListMediaUseCase(ticketRepo ticket.TicketRepository, mediaRepo ticket.MediaRepository, log logger.Interface) *ListMediaUseCase {
	return &ListMediaUseCase{
		ticketRepo: ticketRepo,
		mediaRepo:  mediaRepo,
		logger:     log,
	}
}

func (uc *ListMediaUseCase) Execute(ctx context.Context, query ListMediaQuery) (*ListMediaResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TenantID, query.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "tenant_id", query.TenantID, "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t.Kind() != query.Kind {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	media, err := uc.mediaRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load media", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load media")
	}

	result := &ListMediaResult{Media: make([]MediaDTO, 0, len(media))}
	for _, m := range media {
		result.Media = append(result.Media, MediaDTO{
			ID:        m.ID(),
			URL:       m.URL(),
			Kind:      m.Kind().String(),
			Tag:       m.Tag().String(),
			CreatedAt: m.CreatedAt(),
		})
	}
	return result, nil
}
