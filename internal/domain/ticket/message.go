package ticket

import (
	"fmt"
	"time"

	vo "devicedesk/internal/domain/ticket/valueobjects"
	"devicedesk/internal/shared/biztime"
)

const maxMessageLength = 5000

// Message is one entry in a ticket's append-only conversation log.
type Message struct {
	id         uint
	ticketID   uint
	authorKind vo.AuthorKind
	authorID   *uint
	body       string
	createdAt  time.Time
}

// NewMessage creates a human-authored conversation entry.
func NewMessage(
	ticketID uint,
	authorKind vo.AuthorKind,
	authorID uint,
	body string,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !authorKind.IsValid() {
		return nil, fmt.Errorf("invalid author kind: %s", authorKind)
	}
	if authorKind.IsSystem() {
		return nil, fmt.Errorf("system messages must use NewSystemMessage")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len(body) > maxMessageLength {
		return nil, fmt.Errorf("message body exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Message{
		ticketID:   ticketID,
		authorKind: authorKind,
		authorID:   &authorID,
		body:       body,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// NewSystemMessage creates an engine-authored entry. System messages have
// no author id.
func NewSystemMessage(ticketID uint, body string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}

	return &Message{
		ticketID:   ticketID,
		authorKind: vo.AuthorSystem,
		body:       body,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	authorKind vo.AuthorKind,
	authorID *uint,
	body string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		authorKind: authorKind,
		authorID:   authorID,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint                  { return m.id }
func (m *Message) TicketID() uint            { return m.ticketID }
func (m *Message) AuthorKind() vo.AuthorKind { return m.authorKind }
func (m *Message) AuthorID() *uint           { return m.authorID }
func (m *Message) Body() string              { return m.body }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
