package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devicedesk/internal/domain/workflow"
)

func newTestTicket(t *testing.T, kind workflow.Kind, status workflow.Status) *Ticket {
	t.Helper()
	amount := int64(10000)
	tk, err := ReconstructTicket(
		1, 7, kind, 3,
		"R-20250101-0001",
		"Smartphone", "Pixel 8",
		"B",
		&amount, nil,
		"", "customer reports cracked screen",
		status,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		tenantID    uint
		kind        workflow.Kind
		customerID  uint
		deviceType  string
		deviceModel string
		expectError string
	}{
		{
			name:     "valid repair ticket",
			tenantID: 1, kind: workflow.KindRepair, customerID: 2,
			deviceType: "Laptop", deviceModel: "ThinkPad X1",
		},
		{
			name:     "valid buyback ticket",
			tenantID: 1, kind: workflow.KindBuyback, customerID: 2,
			deviceType: "Smartphone", deviceModel: "iPhone 13",
		},
		{
			name:     "missing tenant",
			tenantID: 0, kind: workflow.KindRepair, customerID: 2,
			deviceType: "Laptop", deviceModel: "ThinkPad X1",
			expectError: "tenant ID is required",
		},
		{
			name:     "invalid kind",
			tenantID: 1, kind: workflow.Kind("recycling"), customerID: 2,
			deviceType: "Laptop", deviceModel: "ThinkPad X1",
			expectError: "invalid workflow kind",
		},
		{
			name:     "missing customer",
			tenantID: 1, kind: workflow.KindRepair, customerID: 0,
			deviceType: "Laptop", deviceModel: "ThinkPad X1",
			expectError: "customer ID is required",
		},
		{
			name:     "missing device type",
			tenantID: 1, kind: workflow.KindRepair, customerID: 2,
			deviceType: "", deviceModel: "ThinkPad X1",
			expectError: "device type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.tenantID, tt.kind, tt.customerID, tt.deviceType, tt.deviceModel, "A", "")
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, workflow.StatusSubmitted, tk.Status())
			assert.Equal(t, tt.tenantID, tk.TenantID())
			assert.Equal(t, tt.kind, tk.Kind())
			assert.Zero(t, tk.ID())
			assert.Empty(t, tk.Number())
		})
	}
}

func TestReconstructTicket_RejectsForeignStatus(t *testing.T) {
	_, err := ReconstructTicket(
		1, 7, workflow.KindBuyback, 3,
		"B-20250101-0001",
		"Smartphone", "Pixel 8", "B",
		nil, nil, "", "",
		workflow.StatusShipped,
		time.Now(), time.Now(),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid for buyback")
}

func TestTicket_ApplyTransition(t *testing.T) {
	t.Run("status change reports previous status", func(t *testing.T) {
		tk := newTestTicket(t, workflow.KindRepair, workflow.StatusSubmitted)

		outcome, err := tk.ApplyTransition(workflow.StatusReceived, FieldPatch{})
		require.NoError(t, err)
		assert.True(t, outcome.StatusChanged)
		assert.Equal(t, workflow.StatusSubmitted, outcome.PreviousStatus)
		assert.Equal(t, workflow.StatusReceived, tk.Status())
	})

	t.Run("same status is not a change", func(t *testing.T) {
		tk := newTestTicket(t, workflow.KindRepair, workflow.StatusReceived)

		outcome, err := tk.ApplyTransition(workflow.StatusReceived, FieldPatch{})
		require.NoError(t, err)
		assert.False(t, outcome.StatusChanged)
		assert.Equal(t, workflow.StatusReceived, tk.Status())
	})

	t.Run("any enum member is accepted regardless of current state", func(t *testing.T) {
		tk := newTestTicket(t, workflow.KindRepair, workflow.StatusCompleted)

		outcome, err := tk.ApplyTransition(workflow.StatusSubmitted, FieldPatch{})
		require.NoError(t, err)
		assert.True(t, outcome.StatusChanged)
		assert.Equal(t, workflow.StatusSubmitted, tk.Status())
		assert.Equal(t, workflow.StatusCompleted, outcome.PreviousStatus)
	})

	t.Run("foreign status is rejected", func(t *testing.T) {
		tk := newTestTicket(t, workflow.KindBuyback, workflow.StatusSubmitted)

		_, err := tk.ApplyTransition(workflow.StatusShipped, FieldPatch{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid for buyback")
		assert.Equal(t, workflow.StatusSubmitted, tk.Status())
	})

	t.Run("patch applies atomically with the status", func(t *testing.T) {
		tk := newTestTicket(t, workflow.KindBuyback, workflow.StatusReceived)
		offered := int64(15000)
		grade := "A-"

		outcome, err := tk.ApplyTransition(workflow.StatusEvaluated, FieldPatch{
			PrimaryAmount:  &offered,
			ConditionGrade: &grade,
		})
		require.NoError(t, err)
		assert.True(t, outcome.StatusChanged)
		require.NotNil(t, tk.PrimaryAmount())
		assert.Equal(t, int64(15000), *tk.PrimaryAmount())
		assert.Equal(t, "A-", tk.ConditionGrade())
	})

	t.Run("patch applies even when status is unchanged", func(t *testing.T) {
		tk := newTestTicket(t, workflow.KindRepair, workflow.StatusDiagnosed)
		diagnosis := "display assembly needs replacement"

		outcome, err := tk.ApplyTransition(workflow.StatusDiagnosed, FieldPatch{Diagnosis: &diagnosis})
		require.NoError(t, err)
		assert.False(t, outcome.StatusChanged)
		assert.Equal(t, diagnosis, tk.Diagnosis())
	})
}

func TestTicket_EveryStatusReachable(t *testing.T) {
	// The engine is deliberately permissive: every member of the kind's
	// enum is a valid target from every other member.
	for _, kind := range workflow.AllKinds() {
		def := workflow.ForKind(kind)
		for _, target := range def.Statuses() {
			tk := newTestTicket(t, kind, workflow.StatusSubmitted)
			outcome, err := tk.ApplyTransition(target, FieldPatch{})
			require.NoError(t, err, "kind=%s target=%s", kind, target)
			assert.Equal(t, target, tk.Status())
			assert.Equal(t, target != workflow.StatusSubmitted, outcome.StatusChanged)
		}
	}
}

func TestFieldPatch(t *testing.T) {
	assert.True(t, FieldPatch{}.IsEmpty())

	amount := int64(4200)
	patch := FieldPatch{PrimaryAmount: &amount}
	assert.False(t, patch.IsEmpty())

	changed := patch.ChangedFields()
	assert.Len(t, changed, 1)
	assert.Equal(t, int64(4200), changed["primary_amount"])
}

func TestTicket_SetIDAndNumber(t *testing.T) {
	tk, err := NewTicket(1, workflow.KindRefurbishing, 2, "Tablet", "iPad Air", "C", "")
	require.NoError(t, err)

	require.NoError(t, tk.SetID(9))
	assert.Error(t, tk.SetID(10), "id must be immutable once set")

	require.NoError(t, tk.SetNumber("F-20250101-0001"))
	assert.Error(t, tk.SetNumber("F-20250101-0002"), "number must be immutable once set")
}

func TestTicket_DeviceDescription(t *testing.T) {
	tk := newTestTicket(t, workflow.KindRepair, workflow.StatusSubmitted)
	assert.Equal(t, "Smartphone Pixel 8", tk.DeviceDescription())
}
