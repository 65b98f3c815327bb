package usecases

import (
	"context"

	"devicedesk/internal/domain/workflow"
)

// NotificationSender is the outbound notification dispatcher boundary.
// Delivery is not guaranteed; a nil error only means the dispatcher
// accepted the message.
type NotificationSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// NumberGenerator produces human-readable ticket numbers, unique within a
// tenant.
type NumberGenerator interface {
	Generate(ctx context.Context, tenantID uint, kind workflow.Kind) (string, error)
}

// ListCache is the TTL cache in front of plain first-page ticket listings.
// All methods are best-effort; a cache failure never fails the operation.
type ListCache interface {
	Get(ctx context.Context, tenantID uint, kind workflow.Kind) (*ListTicketsResult, bool)
	Set(ctx context.Context, tenantID uint, kind workflow.Kind, result *ListTicketsResult)
	Invalidate(ctx context.Context, tenantID uint, kind workflow.Kind)
}

// Executor interfaces consumed by the HTTP handlers.

type TransitionTicketExecutor interface {
	Execute(ctx context.Context, cmd TransitionTicketCommand) (*TransitionTicketResult, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type ListMediaExecutor interface {
	Execute(ctx context.Context, query ListMediaQuery) (*ListMediaResult, error)
}
