package item

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the processing state of one garment line.
//
//	pending -> inspecting -> stain_treating -> washing -> drying -> ironing -> quality_check -> packaged -> completed
//	                     \________________________/
//
// damaged and lost are reachable from every non-terminal state.
type Status string

const (
	Pending       Status = "pending"
	Inspecting    Status = "inspecting"
	StainTreating Status = "stain_treating"
	Washing       Status = "washing"
	Drying        Status = "drying"
	Ironing       Status = "ironing"
	QualityCheck  Status = "quality_check"
	Packaged      Status = "packaged"
	Completed     Status = "completed"
	Damaged       Status = "damaged"
	Lost          Status = "lost"
)

func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:       {Inspecting},
		Inspecting:    {StainTreating, Washing},
		StainTreating: {Washing},
		Washing:       {Drying},
		Drying:        {Ironing},
		Ironing:       {QualityCheck},
		QualityCheck:  {Packaged},
		Packaged:      {Completed},
	}
}

// ParseStatus converts the wire name of an item status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Inspecting, StainTreating, Washing, Drying, Ironing,
		QualityCheck, Packaged, Completed, Damaged, Lost:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid item status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the item is finalized.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Damaged || s == Lost
}

// IsReadyForDelivery reports whether the item no longer blocks handing the
// order over to delivery.
func (s Status) IsReadyForDelivery() bool {
	return s == Packaged || s.IsTerminal()
}

// CanTransitionTo checks the item transition table. Moving to the current
// status is not a transition.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == Damaged || next == Lost {
		return true
	}
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Condition describes the garment state at intake and at hand over.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
	ConditionDamaged   Condition = "damaged"
)

func (c Condition) Validate() error {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("condition", fmt.Errorf("%q is not a valid condition", string(c)))
	}
}
