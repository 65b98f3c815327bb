package usecases

import (
	"context"
	"time"

	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListTicketsQuery struct {
	Kind       workflow.Kind
	TenantID   uint
	Status     *workflow.Status
	CustomerID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type TicketSummary struct {
	ID          uint      `json:"id"`
	Kind        string    `json:"kind"`
	Number      string    `json:"number"`
	CustomerID  uint      `json:"customer_id"`
	DeviceType  string    `json:"device_type"`
	DeviceModel string    `json:"device_model"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListTicketsResult struct {
	Tickets  []TicketSummary `json:"tickets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	listCache  ListCache
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, listCache ListCache, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		listCache:  listCache,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if !query.Kind.IsValid() {
		return nil, errors.NewValidationError("invalid ticket kind")
	}
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant is required")
	}
	if query.Status != nil && !workflow.ForKind(query.Kind).IsValidStatus(*query.Status) {
		return nil, errors.NewValidationError("invalid status filter")
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = defaultPageSize
	}
	if query.PageSize > maxPageSize {
		query.PageSize = maxPageSize
	}

	kind := query.Kind
	filter := ticket.Filter{
		Kind:       &kind,
		Status:     query.Status,
		CustomerID: query.CustomerID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	cacheable := filter.IsPlainFirstPage() && query.PageSize == defaultPageSize
	if cacheable && uc.listCache != nil {
		if cached, ok := uc.listCache.Get(ctx, query.TenantID, query.Kind); ok {
			return cached, nil
		}
	}

	tickets, total, err := uc.ticketRepo.List(ctx, query.TenantID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets",
			"tenant_id", query.TenantID,
			"kind", query.Kind.String(),
			"error", err,
		)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	result := &ListTicketsResult{
		Tickets:  make([]TicketSummary, 0, len(tickets)),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for _, t := range tickets {
		result.Tickets = append(result.Tickets, TicketSummary{
			ID:          t.ID(),
			Kind:        t.Kind().String(),
			Number:      t.Number(),
			CustomerID:  t.CustomerID(),
			DeviceType:  t.DeviceType(),
			DeviceModel: t.DeviceModel(),
			Status:      t.Status().String(),
			CreatedAt:   t.CreatedAt(),
			UpdatedAt:   t.UpdatedAt(),
		})
	}

	if cacheable && uc.listCache != nil {
		uc.listCache.Set(ctx, query.TenantID, query.Kind, result)
	}

	return result, nil
}
