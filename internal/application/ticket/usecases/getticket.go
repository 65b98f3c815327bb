package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Kind     workflow.Kind
	TenantID uint
	TicketID uint
}

type StatusEventDTO struct {
	PreviousStatus string                 `json:"previous_status"`
	NewStatus      string                 `json:"new_status"`
	Note           string                 `json:"note,omitempty"`
	ActorID        uint                   `json:"actor_id,omitempty"`
	ChangedFields  map[string]interface{} `json:"changed_fields,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type MessageDTO struct {
	ID         uint      `json:"id"`
	AuthorKind string    `json:"author_kind"`
	AuthorID   *uint     `json:"author_id,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type MediaDTO struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GetTicketResult struct {
	ID              uint             `json:"id"`
	Kind            string           `json:"kind"`
	Number          string           `json:"number"`
	CustomerID      uint             `json:"customer_id"`
	DeviceType      string           `json:"device_type"`
	DeviceModel     string           `json:"device_model"`
	ConditionGrade  string           `json:"condition_grade,omitempty"`
	PrimaryAmount   *int64           `json:"primary_amount,omitempty"`
	SecondaryAmount *int64           `json:"secondary_amount,omitempty"`
	Diagnosis       string           `json:"diagnosis,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	StatusHistory   []StatusEventDTO `json:"status_history"`
	Messages        []MessageDTO     `json:"messages"`
	Media           []MediaDTO       `json:"media"`
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	eventRepo   ticket.StatusEventRepository
	messageRepo ticket.MessageRepository
	mediaRepo   ticket.MediaRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	eventRepo ticket.StatusEventRepository,
	messageRepo ticket.MessageRepository,
	mediaRepo ticket.MediaRepository,
	log logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		eventRepo:   eventRepo,
		messageRepo: messageRepo,
		mediaRepo:   mediaRepo,
		logger:      log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
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

	events, err := uc.eventRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load status history", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load status history")
	}

	messages, err := uc.messageRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load messages", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load messages")
	}

	media, err := uc.mediaRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load media", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load media")
	}

	result := &GetTicketResult{
		ID:              t.ID(),
		Kind:            t.Kind().String(),
		Number:          t.Number(),
		CustomerID:      t.CustomerID(),
		DeviceType:      t.DeviceType(),
		DeviceModel:     t.DeviceModel(),
		ConditionGrade:  t.ConditionGrade(),
		PrimaryAmount:   t.PrimaryAmount(),
		SecondaryAmount: t.SecondaryAmount(),
		Diagnosis:       t.Diagnosis(),
		Notes:           t.Notes(),
		Status:          t.Status().String(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		StatusHistory:   make([]StatusEventDTO, 0, len(events)),
		Messages:        make([]MessageDTO, 0, len(messages)),
		Media:           make([]MediaDTO, 0, len(media)),
	}

	for _, e := range events {
		result.StatusHistory = append(result.StatusHistory, StatusEventDTO{
			PreviousStatus: e.PreviousStatus().String(),
			NewStatus:      e.NewStatus().String(),
			Note:           e.Note(),
			ActorID:        e.ActorID(),
			ChangedFields:  e.ChangedFields(),
			CreatedAt:      e.CreatedAt(),
		})
	}

	for _, m := range messages {
		result.Messages = append(result.Messages, MessageDTO{
			ID:         m.ID(),
			AuthorKind: m.AuthorKind().String(),
			AuthorID:   m.AuthorID(),
			Body:       m.Body(),
			CreatedAt:  m.CreatedAt(),
		})
	}

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
