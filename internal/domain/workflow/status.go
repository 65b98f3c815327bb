package workflow

import "strings"

// Status is a workflow status value. Which values are members of the enum
// depends on the Kind; Definition.IsValidStatus is the authority.
type Status string

const (
	StatusSubmitted       Status = "submitted"
	StatusReceived        Status = "received"
	StatusDiagnosed       Status = "diagnosed"
	StatusInProgress      Status = "in_progress"
	StatusPartsOrdered    Status = "parts_ordered"
	StatusReadyForTesting Status = "ready_for_testing"
	StatusEvaluated       Status = "evaluated"
	StatusPendingPayment  Status = "pending_payment"
	StatusGraded          Status = "graded"
	StatusCompleted       Status = "completed"
	StatusShipped         Status = "shipped"
	StatusCancelled       Status = "cancelled"
	StatusRejected        Status = "rejected"
	StatusReturned        Status = "returned"
)

func (s Status) String() string {
	return string(s)
}

// Label returns a human-readable form of the status, used as the fallback in
// notification content for statuses without a dedicated message.
func (s Status) Label() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
