package ticket

import (
	"fmt"
	"time"

	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/biztime"
)

// Ticket is a device under service in one of the three workflows. The
// tenant id is immutable after creation and every field change goes through
// an explicit mutator; tickets are never physically deleted.
type Ticket struct {
	id              uint
	tenantID        uint
	kind            workflow.Kind
	customerID      uint
	number          string
	deviceType      string
	deviceModel     string
	conditionGrade  string
	primaryAmount   *int64
	secondaryAmount *int64
	diagnosis       string
	notes           string
	status          workflow.Status
	createdAt       time.Time
	updatedAt       time.Time
}

// FieldPatch carries the kind-specific field updates bundled with a
// transition. Nil pointers mean "leave unchanged". Amounts are in the
// smallest currency unit.
type FieldPatch struct {
	ConditionGrade  *string
	PrimaryAmount   *int64
	SecondaryAmount *int64
	Diagnosis       *string
	Notes           *string
}

// IsEmpty reports whether the patch changes nothing.
func (p FieldPatch) IsEmpty() bool {
	return p.ConditionGrade == nil && p.PrimaryAmount == nil &&
		p.SecondaryAmount == nil && p.Diagnosis == nil && p.Notes == nil
}

// ChangedFields returns the patched fields as a map for the audit trail.
func (p FieldPatch) ChangedFields() map[string]interface{} {
	changed := make(map[string]interface{})
	if p.ConditionGrade != nil {
		changed["condition_grade"] = *p.ConditionGrade
	}
	if p.PrimaryAmount != nil {
		changed["primary_amount"] = *p.PrimaryAmount
	}
	if p.SecondaryAmount != nil {
		changed["secondary_amount"] = *p.SecondaryAmount
	}
	if p.Diagnosis != nil {
		changed["diagnosis"] = *p.Diagnosis
	}
	if p.Notes != nil {
		changed["notes"] = *p.Notes
	}
	return changed
}

func NewTicket(
	tenantID uint,
	kind workflow.Kind,
	customerID uint,
	deviceType string,
	deviceModel string,
	conditionGrade string,
	notes string,
) (*Ticket, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid workflow kind: %s", kind)
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if len(deviceType) == 0 {
		return nil, fmt.Errorf("device type is required")
	}
	if len(deviceModel) == 0 {
		return nil, fmt.Errorf("device model is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		tenantID:       tenantID,
		kind:           kind,
		customerID:     customerID,
		deviceType:     deviceType,
		deviceModel:    deviceModel,
		conditionGrade: conditionGrade,
		notes:          notes,
		status:         workflow.ForKind(kind).InitialStatus(),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	tenantID uint,
	kind workflow.Kind,
	customerID uint,
	number string,
	deviceType string,
	deviceModel string,
	conditionGrade string,
	primaryAmount *int64,
	secondaryAmount *int64,
	diagnosis string,
	notes string,
	status workflow.Status,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid workflow kind: %s", kind)
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !workflow.ForKind(kind).IsValidStatus(status) {
		return nil, fmt.Errorf("status %s is not valid for %s tickets", status, kind)
	}

	return &Ticket{
		id:              id,
		tenantID:        tenantID,
		kind:            kind,
		customerID:      customerID,
		number:          number,
		deviceType:      deviceType,
		deviceModel:     deviceModel,
		conditionGrade:  conditionGrade,
		primaryAmount:   primaryAmount,
		secondaryAmount: secondaryAmount,
		diagnosis:       diagnosis,
		notes:           notes,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) TenantID() uint          { return t.tenantID }
func (t *Ticket) Kind() workflow.Kind     { return t.kind }
func (t *Ticket) CustomerID() uint        { return t.customerID }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) DeviceType() string      { return t.deviceType }
func (t *Ticket) DeviceModel() string     { return t.deviceModel }
func (t *Ticket) ConditionGrade() string  { return t.conditionGrade }
func (t *Ticket) PrimaryAmount() *int64   { return t.primaryAmount }
func (t *Ticket) SecondaryAmount() *int64 { return t.secondaryAmount }
func (t *Ticket) Diagnosis() string       { return t.diagnosis }
func (t *Ticket) Notes() string           { return t.notes }
func (t *Ticket) Status() workflow.Status { return t.status }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

// DeviceDescription is the "<type> <model>" string used in customer-facing
// notification content.
func (t *Ticket) DeviceDescription() string {
	return t.deviceType + " " + t.deviceModel
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// TransitionOutcome reports what ApplyTransition did.
type TransitionOutcome struct {
	PreviousStatus workflow.Status
	StatusChanged  bool
}

// ApplyTransition sets the requested status and applies the field patch in
// one step. Any member of the kind's enum is accepted as a target; the
// forward-chain table is not enforced here so staff can correct mistakes.
// Requesting the current status is not an error: the patch still applies
// and the outcome reports StatusChanged false so side effects are skipped.
func (t *Ticket) ApplyTransition(newStatus workflow.Status, patch FieldPatch) (TransitionOutcome, error) {
	def := workflow.ForKind(t.kind)
	if !def.IsValidStatus(newStatus) {
		return TransitionOutcome{}, fmt.Errorf("status %s is not valid for %s tickets", newStatus, t.kind)
	}

	outcome := TransitionOutcome{
		PreviousStatus: t.status,
		StatusChanged:  t.status != newStatus,
	}

	t.applyPatch(patch)
	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	return outcome, nil
}

func (t *Ticket) applyPatch(patch FieldPatch) {
	if patch.ConditionGrade != nil {
		t.conditionGrade = *patch.ConditionGrade
	}
	if patch.PrimaryAmount != nil {
		t.primaryAmount = patch.PrimaryAmount
	}
	if patch.SecondaryAmount != nil {
		t.secondaryAmount = patch.SecondaryAmount
	}
	if patch.Diagnosis != nil {
		t.diagnosis = *patch.Diagnosis
	}
	if patch.Notes != nil {
		t.notes = *patch.Notes
	}
}
