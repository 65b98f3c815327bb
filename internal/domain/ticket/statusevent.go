package ticket

import (
	"fmt"
	"time"

	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/biztime"
)

// StatusEvent is one append-only audit trail entry, recorded for every
// workflow kind on each successful status change.
type StatusEvent struct {
	id             uint
	ticketID       uint
	previousStatus workflow.Status
	newStatus      workflow.Status
	note           string
	actorID        uint
	changedFields  map[string]interface{}
	createdAt      time.Time
}

func NewStatusEvent(
	ticketID uint,
	previousStatus workflow.Status,
	newStatus workflow.Status,
	note string,
	actorID uint,
	changedFields map[string]interface{},
) (*StatusEvent, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &StatusEvent{
		ticketID:       ticketID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		note:           note,
		actorID:        actorID,
		changedFields:  changedFields,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructStatusEvent(
	id uint,
	ticketID uint,
	previousStatus workflow.Status,
	newStatus workflow.Status,
	note string,
	actorID uint,
	changedFields map[string]interface{},
	createdAt time.Time,
) *StatusEvent {
	return &StatusEvent{
		id:             id,
		ticketID:       ticketID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		note:           note,
		actorID:        actorID,
		changedFields:  changedFields,
		createdAt:      createdAt,
	}
}

func (e *StatusEvent) ID() uint                        { return e.id }
func (e *StatusEvent) TicketID() uint                  { return e.ticketID }
func (e *StatusEvent) PreviousStatus() workflow.Status { return e.previousStatus }
func (e *StatusEvent) NewStatus() workflow.Status      { return e.newStatus }
func (e *StatusEvent) Note() string                    { return e.note }
func (e *StatusEvent) ActorID() uint                   { return e.actorID }
func (e *StatusEvent) CreatedAt() time.Time            { return e.createdAt }

func (e *StatusEvent) ChangedFields() map[string]interface{} {
	fieldsCopy := make(map[string]interface{}, len(e.changedFields))
	for k, v := range e.changedFields {
		fieldsCopy[k] = v
	}
	return fieldsCopy
}

func (e *StatusEvent) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("status event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status event ID cannot be zero")
	}
	e.id = id
	return nil
}
