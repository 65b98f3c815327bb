package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"devicedesk/internal/application/notification"
	"devicedesk/internal/domain/customer"
	"devicedesk/internal/domain/tenant"
	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
)

const defaultSendTimeout = 10 * time.Second

type TransitionTicketCommand struct {
	Kind      workflow.Kind
	TenantID  uint
	TicketID  uint
	NewStatus workflow.Status
	Note      string
	Patch     ticket.FieldPatch
	ActorID   uint
}

type TransitionTicketResult struct {
	TicketID         uint   `json:"ticket_id"`
	Number           string `json:"number"`
	PreviousStatus   string `json:"previous_status"`
	NewStatus        string `json:"new_status"`
	StatusChanged    bool   `json:"status_changed"`
	NotificationSent bool   `json:"notification_sent"`
	UpdatedAt        string `json:"updated_at"`
}

// TransitionTicketUseCase is the lifecycle engine: it validates a requested
// status transition, persists it, and runs the side effects. Only the
// ticket update itself can fail the call; the audit entry, conversation
// messages and email dispatch are best-effort and degrade to warnings.
type TransitionTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	eventRepo    ticket.StatusEventRepository
	messageRepo  ticket.MessageRepository
	customerRepo customer.Repository
	tenantRepo   tenant.Repository
	builder      *notification.Builder
	sender       NotificationSender
	listCache    ListCache
	logger       logger.Interface

	strictTransitions bool
	sendTimeout       time.Duration
}

type TransitionOption func(*TransitionTicketUseCase)

// WithStrictTransitions makes the engine enforce the forward-chain
// transition table instead of accepting any member of the status enum.
func WithStrictTransitions() TransitionOption {
	return func(uc *TransitionTicketUseCase) {
		uc.strictTransitions = true
	}
}

// WithSendTimeout bounds the notification dispatch; expiry is treated like
// any other dispatcher failure.
func WithSendTimeout(d time.Duration) TransitionOption {
	return func(uc *TransitionTicketUseCase) {
		if d > 0 {
			uc.sendTimeout = d
		}
	}
}

func NewTransitionTicketUseCase(
	ticketRepo ticket.TicketRepository,
	eventRepo ticket.StatusEventRepository,
	messageRepo ticket.MessageRepository,
	customerRepo customer.Repository,
	tenantRepo tenant.Repository,
	builder *notification.Builder,
	sender NotificationSender,
	listCache ListCache,
	log logger.Interface,
	opts ...TransitionOption,
) *TransitionTicketUseCase {
	uc := &TransitionTicketUseCase{
		ticketRepo:   ticketRepo,
		eventRepo:    eventRepo,
		messageRepo:  messageRepo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		builder:      builder,
		sender:       sender,
		listCache:    listCache,
		logger:       log,
		sendTimeout:  defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *TransitionTicketUseCase) Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error) {
	uc.logger.Infow("executing ticket transition",
		"kind", cmd.Kind, "tenant_id", cmd.TenantID, "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid transition command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TenantID, cmd.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			uc.logger.Warnw("ticket not found in tenant scope", "tenant_id", cmd.TenantID, "ticket_id", cmd.TicketID)
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "tenant_id", cmd.TenantID, "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	// A ticket addressed through the wrong workflow's endpoint is
	// indistinguishable from a missing one.
	if t.Kind() != cmd.Kind {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if uc.strictTransitions && t.Status() != cmd.NewStatus {
		if !workflow.ForKind(cmd.Kind).CanTransitionTo(t.Status(), cmd.NewStatus) {
			return nil, errors.NewInvalidStatusError(
				fmt.Sprintf("transition from %s to %s is not allowed", t.Status(), cmd.NewStatus))
		}
	}

	outcome, err := t.ApplyTransition(cmd.NewStatus, cmd.Patch)
	if err != nil {
		return nil, errors.NewInvalidStatusError(err.Error())
	}

	// Step 1: persist. This alone decides success or failure of the call.
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket transition",
			"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if uc.listCache != nil {
		uc.listCache.Invalidate(ctx, cmd.TenantID, cmd.Kind)
	}

	// Steps 2-3: best-effort side effects. Errors are logged, never
	// surfaced; the committed status change stands regardless.
	notificationSent := false
	if outcome.StatusChanged {
		notificationSent = uc.runSideEffects(ctx, t, outcome, cmd)
	} else {
		uc.logger.Debugw("status unchanged, skipping side effects",
			"ticket_id", cmd.TicketID, "status", cmd.NewStatus)
	}

	uc.logger.Infow("ticket transition applied",
		"ticket_id", t.ID(), "previous_status", outcome.PreviousStatus,
		"new_status", t.Status(), "notification_sent", notificationSent)

	return &TransitionTicketResult{
		TicketID:         t.ID(),
		Number:           t.Number(),
		PreviousStatus:   outcome.PreviousStatus.String(),
		NewStatus:        t.Status().String(),
		StatusChanged:    outcome.StatusChanged,
		NotificationSent: notificationSent,
		UpdatedAt:        t.UpdatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *TransitionTicketUseCase) validateCommand(cmd TransitionTicketCommand) error {
	if cmd.TenantID == 0 {
		return errors.NewValidationError("tenant ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if !cmd.Kind.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid workflow kind: %s", cmd.Kind))
	}
	if !workflow.ForKind(cmd.Kind).IsValidStatus(cmd.NewStatus) {
		return errors.NewInvalidStatusError(
			fmt.Sprintf("status %s is not valid for %s tickets", cmd.NewStatus, cmd.Kind))
	}
	return nil
}

// runSideEffects appends the audit entry and system message, then attempts
// the customer notification. It returns whether a notification went out.
// Nothing in here may propagate an error to the caller.
func (uc *TransitionTicketUseCase) runSideEffects(
	ctx context.Context,
	t *ticket.Ticket,
	outcome ticket.TransitionOutcome,
	cmd TransitionTicketCommand,
) bool {
	uc.appendStatusEvent(ctx, t, outcome, cmd)
	uc.appendSystemMessage(ctx, t.ID(),
		fmt.Sprintf("Status changed from %s to %s", outcome.PreviousStatus, t.Status()))

	return uc.dispatchNotification(ctx, t)
}

func (uc *TransitionTicketUseCase) appendStatusEvent(
	ctx context.Context,
	t *ticket.Ticket,
	outcome ticket.TransitionOutcome,
	cmd TransitionTicketCommand,
) {
	event, err := ticket.NewStatusEvent(
		t.ID(), outcome.PreviousStatus, t.Status(), cmd.Note, cmd.ActorID, cmd.Patch.ChangedFields())
	if err != nil {
		uc.logger.Errorw("failed to build status event", "ticket_id", t.ID(), "error", err)
		return
	}
	if err := uc.eventRepo.Append(ctx, event); err != nil {
		uc.logger.Errorw("failed to append status event", "ticket_id", t.ID(), "error", err)
	}
}

func (uc *TransitionTicketUseCase) appendSystemMessage(ctx context.Context, ticketID uint, body string) {
	msg, err := ticket.NewSystemMessage(ticketID, body)
	if err != nil {
		uc.logger.Errorw("failed to build system message", "ticket_id", ticketID, "error", err)
		return
	}
	if err := uc.messageRepo.Append(ctx, msg); err != nil {
		uc.logger.Errorw("failed to append system message", "ticket_id", ticketID, "error", err)
	}
}

func (uc *TransitionTicketUseCase) dispatchNotification(ctx context.Context, t *ticket.Ticket) bool {
	cust, err := uc.customerRepo.GetByID(ctx, t.TenantID(), t.CustomerID())
	if err != nil {
		uc.logger.Warnw("customer lookup failed, skipping notification",
			"ticket_id", t.ID(), "customer_id", t.CustomerID(), "error", err)
		return false
	}
	if !cust.HasEmail() {
		uc.logger.Debugw("customer has no email on file, skipping notification",
			"ticket_id", t.ID(), "customer_id", cust.ID())
		return false
	}

	tn, err := uc.tenantRepo.GetByID(ctx, t.TenantID())
	if err != nil {
		uc.logger.Warnw("tenant lookup failed, skipping notification",
			"ticket_id", t.ID(), "tenant_id", t.TenantID(), "error", err)
		return false
	}

	content := uc.builder.Build(notification.Input{
		Kind:              t.Kind(),
		NewStatus:         t.Status(),
		TenantName:        tn.Name(),
		LogoURL:           tn.LogoURL(),
		FooterMarkdown:    tn.FooterMarkdown(),
		CustomerName:      cust.Name(),
		DeviceDescription: t.DeviceDescription(),
		TicketNumber:      t.Number(),
		Currency:          tn.Currency(),
		PrimaryAmount:     t.PrimaryAmount(),
		SecondaryAmount:   t.SecondaryAmount(),
	})

	sendCtx, cancel := context.WithTimeout(ctx, uc.sendTimeout)
	defer cancel()

	if err := uc.sender.Send(sendCtx, cust.Email(), content.Subject, content.HTML); err != nil {
		uc.logger.Warnw("notification dispatch failed, transition stands",
			"ticket_id", t.ID(), "to", cust.Email(), "error", err)
		uc.appendSystemMessage(ctx, t.ID(),
			fmt.Sprintf("Email notification could not be sent to %s", cust.Email()))
		return false
	}

	uc.appendSystemMessage(ctx, t.ID(),
		fmt.Sprintf("Email notification sent to %s", cust.Email()))
	return true
}
