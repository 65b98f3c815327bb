// Package workflow defines the three device-service workflows (repair,
// buyback, refurbishing) as data: their status enums, terminal states and
// advisory transition tables. The lifecycle engine is generic over Kind and
// consults a Definition instead of branching per workflow.
package workflow

import "fmt"

type Kind string

const (
	KindRepair       Kind = "repair"
	KindBuyback      Kind = "buyback"
	KindRefurbishing Kind = "refurbishing"
)

var validKinds = map[Kind]bool{
	KindRepair:       true,
	KindBuyback:      true,
	KindRefurbishing: true,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

// NumberPrefix returns the ticket-number prefix for the kind.
func (k Kind) NumberPrefix() string {
	switch k {
	case KindRepair:
		return "R"
	case KindBuyback:
		return "B"
	case KindRefurbishing:
		return "F"
	}
	return "T"
}

// Label returns the human-readable workflow name.
func (k Kind) Label() string {
	switch k {
	case KindRepair:
		return "Repair"
	case KindBuyback:
		return "Buyback"
	case KindRefurbishing:
		return "Refurbishing"
	}
	return string(k)
}

func AllKinds() []Kind {
	return []Kind{KindRepair, KindBuyback, KindRefurbishing}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid workflow kind: %s", s)
	}
	return k, nil
}
