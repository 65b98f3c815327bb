package workflow

// Definition describes one workflow: the ordered status enum, the terminal
// statuses, the escape statuses reachable from any non-terminal state, and
// the labels of the monetary fields that participate in transitions.
//
// The transition table derived from it is advisory: the engine validates
// enum membership only unless strict mode is enabled, so staff can move a
// ticket to any member status to correct mistakes.
type Definition struct {
	kind     Kind
	chain    []Status
	escapes  []Status
	terminal map[Status]bool
	valid    map[Status]bool

	// PrimaryAmountLabel and SecondaryAmountLabel name the monetary fields
	// for this workflow; empty means the field is unused.
	PrimaryAmountLabel   string
	SecondaryAmountLabel string
}

var definitions = map[Kind]*Definition{
	KindRepair: newDefinition(
		KindRepair,
		[]Status{
			StatusSubmitted,
			StatusReceived,
			StatusDiagnosed,
			StatusInProgress,
			StatusPartsOrdered,
			StatusReadyForTesting,
			StatusCompleted,
			StatusShipped,
		},
		[]Status{StatusCancelled},
		"Estimated cost",
		"Actual cost",
	),
	KindBuyback: newDefinition(
		KindBuyback,
		[]Status{
			StatusSubmitted,
			StatusReceived,
			StatusEvaluated,
			StatusPendingPayment,
			StatusCompleted,
		},
		[]Status{StatusRejected, StatusReturned},
		"Offered amount",
		"",
	),
	KindRefurbishing: newDefinition(
		KindRefurbishing,
		[]Status{
			StatusSubmitted,
			StatusReceived,
			StatusGraded,
			StatusInProgress,
			StatusCompleted,
			StatusShipped,
		},
		[]Status{StatusCancelled},
		"Refurbishing cost",
		"",
	),
}

func newDefinition(kind Kind, chain []Status, escapes []Status, primaryLabel, secondaryLabel string) *Definition {
	d := &Definition{
		kind:                 kind,
		chain:                chain,
		escapes:              escapes,
		terminal:             make(map[Status]bool),
		valid:                make(map[Status]bool),
		PrimaryAmountLabel:   primaryLabel,
		SecondaryAmountLabel: secondaryLabel,
	}

	for _, s := range chain {
		d.valid[s] = true
	}
	for _, s := range escapes {
		d.valid[s] = true
		d.terminal[s] = true
	}
	// The end of the main chain is terminal.
	d.terminal[chain[len(chain)-1]] = true

	return d
}

// ForKind returns the definition of the given workflow kind. The kind must
// be valid; callers validate kinds at the boundary.
func ForKind(kind Kind) *Definition {
	return definitions[kind]
}

func (d *Definition) Kind() Kind {
	return d.kind
}

// InitialStatus is the status every ticket is created in.
func (d *Definition) InitialStatus() Status {
	return StatusSubmitted
}

// Statuses returns every member of the workflow's enum, main chain first.
func (d *Definition) Statuses() []Status {
	all := make([]Status, 0, len(d.chain)+len(d.escapes))
	all = append(all, d.chain...)
	all = append(all, d.escapes...)
	return all
}

// IsValidStatus reports whether s is a member of this workflow's enum.
func (d *Definition) IsValidStatus(s Status) bool {
	return d.valid[s]
}

// IsTerminal reports whether s ends the workflow.
func (d *Definition) IsTerminal(s Status) bool {
	return d.terminal[s]
}

// CanTransitionTo reports whether the forward-chain transition table allows
// from → to: the next status in the main chain, or any escape status from a
// non-terminal state. Enforced only when the engine runs in strict mode.
func (d *Definition) CanTransitionTo(from, to Status) bool {
	if !d.valid[from] || !d.valid[to] {
		return false
	}
	if d.terminal[from] {
		return false
	}

	for _, escape := range d.escapes {
		if to == escape {
			return true
		}
	}

	for i, s := range d.chain {
		if s == from {
			return i+1 < len(d.chain) && d.chain[i+1] == to
		}
	}
	return false
}
