package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	TenantID        uint   `gorm:"not null;index;uniqueIndex:idx_tenant_number"`
	Kind            string `gorm:"size:20;not null;index"`
	CustomerID      uint   `gorm:"not null;index"`
	Number          string `gorm:"size:50;not null;uniqueIndex:idx_tenant_number"`
	DeviceType      string `gorm:"size:100;not null"`
	DeviceModel     string `gorm:"size:200;not null"`
	ConditionGrade  string `gorm:"size:20"`
	PrimaryAmount   *int64
	SecondaryAmount *int64
	Diagnosis       string `gorm:"type:text"`
	Notes           string `gorm:"type:text"`
	Status          string `gorm:"size:30;not null;index"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type StatusEventModel struct {
	ID             uint           `gorm:"primaryKey"`
	TicketID       uint           `gorm:"not null;index"`
	PreviousStatus string         `gorm:"size:30;not null"`
	NewStatus      string         `gorm:"size:30;not null"`
	Note           string         `gorm:"type:text"`
	ActorID        uint           `gorm:"not null;index"`
	ChangedFields  datatypes.JSON `gorm:"type:json"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (StatusEventModel) TableName() string {
	return "ticket_status_events"
}

type MessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorKind string `gorm:"size:20;not null"`
	AuthorID   *uint  `gorm:"index"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}

type MediaModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	URL       string `gorm:"size:500;not null"`
	Kind      string `gorm:"size:20;not null"`
	Tag       string `gorm:"size:20"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (MediaModel) TableName() string {
	return "ticket_media"
}
