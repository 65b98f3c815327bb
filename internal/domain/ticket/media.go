package ticket

import (
	"fmt"
	"time"

	vo "devicedesk/internal/domain/ticket/valueobjects"
)

// Media is a reference to an uploaded evidence blob. The lifecycle engine
// reads these and never mutates them; uploads and deletions happen on a
// separate staff path.
type Media struct {
	id        uint
	ticketID  uint
	url       string
	kind      vo.MediaKind
	tag       vo.MediaTag
	createdAt time.Time
}

func ReconstructMedia(
	id uint,
	ticketID uint,
	url string,
	kind vo.MediaKind,
	tag vo.MediaTag,
	createdAt time.Time,
) (*Media, error) {
	if id == 0 {
		return nil, fmt.Errorf("media ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(url) == 0 {
		return nil, fmt.Errorf("media url is required")
	}

	return &Media{
		id:        id,
		ticketID:  ticketID,
		url:       url,
		kind:      kind,
		tag:       tag,
		createdAt: createdAt,
	}, nil
}

func (m *Media) ID() uint             { return m.id }
func (m *Media) TicketID() uint       { return m.ticketID }
func (m *Media) URL() string          { return m.url }
func (m *Media) Kind() vo.MediaKind   { return m.kind }
func (m *Media) Tag() vo.MediaTag     { return m.tag }
func (m *Media) CreatedAt() time.Time { return m.createdAt }
