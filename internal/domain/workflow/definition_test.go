package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForKind_AllKindsHaveDefinitions(t *testing.T) {
	for _, kind := range AllKinds() {
		def := ForKind(kind)
		require.NotNil(t, def, "definition missing for kind %s", kind)
		assert.Equal(t, kind, def.Kind())
		assert.Equal(t, StatusSubmitted, def.InitialStatus())
		assert.True(t, def.IsValidStatus(StatusSubmitted))
	}
}

func TestDefinition_StatusEnums(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected []Status
	}{
		{
			kind: KindRepair,
			expected: []Status{
				StatusSubmitted, StatusReceived, StatusDiagnosed, StatusInProgress,
				StatusPartsOrdered, StatusReadyForTesting, StatusCompleted, StatusShipped,
				StatusCancelled,
			},
		},
		{
			kind: KindBuyback,
			expected: []Status{
				StatusSubmitted, StatusReceived, StatusEvaluated, StatusPendingPayment,
				StatusCompleted, StatusRejected, StatusReturned,
			},
		},
		{
			kind: KindRefurbishing,
			expected: []Status{
				StatusSubmitted, StatusReceived, StatusGraded, StatusInProgress,
				StatusCompleted, StatusShipped, StatusCancelled,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			def := ForKind(tt.kind)
			assert.Equal(t, tt.expected, def.Statuses())

			for _, s := range tt.expected {
				assert.True(t, def.IsValidStatus(s), "status %s should be valid for %s", s, tt.kind)
			}
			assert.False(t, def.IsValidStatus(Status("bogus")))
		})
	}
}

func TestDefinition_CrossKindStatusesAreInvalid(t *testing.T) {
	assert.False(t, ForKind(KindRepair).IsValidStatus(StatusEvaluated))
	assert.False(t, ForKind(KindRepair).IsValidStatus(StatusRejected))
	assert.False(t, ForKind(KindBuyback).IsValidStatus(StatusShipped))
	assert.False(t, ForKind(KindBuyback).IsValidStatus(StatusCancelled))
	assert.False(t, ForKind(KindRefurbishing).IsValidStatus(StatusPartsOrdered))
}

func TestDefinition_TerminalStatuses(t *testing.T) {
	tests := []struct {
		kind     Kind
		terminal []Status
		open     []Status
	}{
		{
			kind:     KindRepair,
			terminal: []Status{StatusShipped, StatusCancelled},
			open:     []Status{StatusSubmitted, StatusCompleted, StatusPartsOrdered},
		},
		{
			kind:     KindBuyback,
			terminal: []Status{StatusCompleted, StatusRejected, StatusReturned},
			open:     []Status{StatusSubmitted, StatusEvaluated, StatusPendingPayment},
		},
		{
			kind:     KindRefurbishing,
			terminal: []Status{StatusShipped, StatusCancelled},
			open:     []Status{StatusSubmitted, StatusGraded, StatusCompleted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			def := ForKind(tt.kind)
			for _, s := range tt.terminal {
				assert.True(t, def.IsTerminal(s), "%s should be terminal", s)
			}
			for _, s := range tt.open {
				assert.False(t, def.IsTerminal(s), "%s should not be terminal", s)
			}
		})
	}
}

func TestDefinition_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		from    Status
		to      Status
		allowed bool
	}{
		{"repair next in chain", KindRepair, StatusSubmitted, StatusReceived, true},
		{"repair skip ahead", KindRepair, StatusSubmitted, StatusCompleted, false},
		{"repair backwards", KindRepair, StatusCompleted, StatusSubmitted, false},
		{"repair cancel from mid-chain", KindRepair, StatusPartsOrdered, StatusCancelled, true},
		{"repair cancel after shipped", KindRepair, StatusShipped, StatusCancelled, false},
		{"buyback evaluate", KindBuyback, StatusReceived, StatusEvaluated, true},
		{"buyback reject from pending payment", KindBuyback, StatusPendingPayment, StatusRejected, true},
		{"buyback return from submitted", KindBuyback, StatusSubmitted, StatusReturned, true},
		{"buyback reject after completed", KindBuyback, StatusCompleted, StatusRejected, false},
		{"buyback foreign status", KindBuyback, StatusSubmitted, StatusCancelled, false},
		{"refurbishing grade", KindRefurbishing, StatusReceived, StatusGraded, true},
		{"refurbishing ship", KindRefurbishing, StatusCompleted, StatusShipped, true},
		{"refurbishing cancel from in_progress", KindRefurbishing, StatusInProgress, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := ForKind(tt.kind)
			assert.Equal(t, tt.allowed, def.CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestKind_Validation(t *testing.T) {
	for _, kind := range AllKinds() {
		parsed, err := NewKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := NewKind("recycling")
	assert.Error(t, err)
}

func TestKind_NumberPrefix(t *testing.T) {
	assert.Equal(t, "R", KindRepair.NumberPrefix())
	assert.Equal(t, "B", KindBuyback.NumberPrefix())
	assert.Equal(t, "F", KindRefurbishing.NumberPrefix())
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Parts Ordered", StatusPartsOrdered.Label())
	assert.Equal(t, "Submitted", StatusSubmitted.Label())
	assert.Equal(t, "Ready For Testing", StatusReadyForTesting.Label())
}

func TestDefinition_AmountLabels(t *testing.T) {
	assert.Equal(t, "Estimated cost", ForKind(KindRepair).PrimaryAmountLabel)
	assert.Equal(t, "Actual cost", ForKind(KindRepair).SecondaryAmountLabel)
	assert.Equal(t, "Offered amount", ForKind(KindBuyback).PrimaryAmountLabel)
	assert.Empty(t, ForKind(KindBuyback).SecondaryAmountLabel)
	assert.Equal(t, "Refurbishing cost", ForKind(KindRefurbishing).PrimaryAmountLabel)
}
