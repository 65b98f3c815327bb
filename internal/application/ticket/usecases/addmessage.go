package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"devicedesk/internal/domain/ticket"
	vo "devicedesk/internal/domain/ticket/valueobjects"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
)

type AddMessageCommand struct {
	Kind       workflow.Kind
	TenantID   uint
	TicketID   uint
	AuthorKind vo.AuthorKind
	AuthorID   uint
	Body       string
}

type AddMessageResult struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorKind string    `json:"author_kind"`
	AuthorID   *uint     `json:"author_id,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type AddMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewAddMessageUseCase(ticketRepo ticket.TicketRepository, messageRepo ticket.MessageRepository, log logger.Interface) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      log,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TenantID, cmd.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "tenant_id", cmd.TenantID, "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t.Kind() != cmd.Kind {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	message, err := ticket.NewMessage(t.ID(), cmd.AuthorKind, cmd.AuthorID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Append(ctx, message); err != nil {
		uc.logger.Errorw("failed to append message",
			"ticket_id", t.ID(),
			"error", err,
		)
		return nil, errors.NewInternalError("failed to save message")
	}

	return &AddMessageResult{
		ID:         message.ID(),
		TicketID:   message.TicketID(),
		AuthorKind: message.AuthorKind().String(),
		AuthorID:   message.AuthorID(),
		Body:       message.Body(),
		CreatedAt:  message.CreatedAt(),
	}, nil
}
