package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"devicedesk/internal/domain/customer"
	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Kind           workflow.Kind
	TenantID       uint
	CustomerID     uint
	DeviceType     string
	DeviceModel    string
	ConditionGrade string
	Notes          string
	ActorID        uint
}

type CreateTicketResult struct {
	TicketID  uint   `json:"ticket_id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	customerRepo customer.Repository
	numbers      NumberGenerator
	listCache    ListCache
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	customerRepo customer.Repository,
	numbers NumberGenerator,
	listCache ListCache,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		numbers:      numbers,
		listCache:    listCache,
		logger:       log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket",
		"kind", cmd.Kind, "tenant_id", cmd.TenantID, "customer_id", cmd.CustomerID)

	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if !cmd.Kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid workflow kind: %s", cmd.Kind))
	}

	// The customer must exist within the caller's tenant.
	if _, err := uc.customerRepo.GetByID(ctx, cmd.TenantID, cmd.CustomerID); err != nil {
		if stderrors.Is(err, customer.ErrCustomerNotFound) {
			uc.logger.Warnw("customer not found in tenant scope",
				"tenant_id", cmd.TenantID, "customer_id", cmd.CustomerID)
			return nil, errors.NewNotFoundError("customer not found")
		}
		uc.logger.Errorw("failed to load customer",
			"tenant_id", cmd.TenantID, "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to load customer")
	}

	t, err := ticket.NewTicket(
		cmd.TenantID, cmd.Kind, cmd.CustomerID,
		cmd.DeviceType, cmd.DeviceModel, cmd.ConditionGrade, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx, cmd.TenantID, cmd.Kind)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "tenant_id", cmd.TenantID, "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := t.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("ticket number already exists")
		}
		uc.logger.Errorw("failed to save ticket", "tenant_id", cmd.TenantID, "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	if uc.listCache != nil {
		uc.listCache.Invalidate(ctx, cmd.TenantID, cmd.Kind)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(), "number", t.Number(), "kind", cmd.Kind)

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt().Format(time.RFC3339),
	}, nil
}
