package stage

import (
	"fmt"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Stage is a fine grained step reported by a partner while handling an order.
type Stage string

const (
	Assigned Stage = "assigned"
	Accepted Stage = "accepted"
	Rejected Stage = "rejected"

	PickupScheduled Stage = "pickup_scheduled"
	PickupStarted   Stage = "pickup_started"
	PickupCompleted Stage = "pickup_completed"

	InspectionStarted   Stage = "inspection_started"
	InspectionCompleted Stage = "inspection_completed"

	Washing        Stage = "washing"
	StainTreatment Stage = "stain_treatment"
	DryCleaning    Stage = "dry_cleaning"
	Drying         Stage = "drying"

	Ironing          Stage = "ironing"
	Folding          Stage = "folding"
	QualityCheck     Stage = "quality_check"
	Packaging        Stage = "packaging"
	ReadyForDelivery Stage = "ready_for_delivery"

	OutForDelivery Stage = "out_for_delivery"
	Delivered      Stage = "delivered"

	IssueReported Stage = "issue_reported"
	IssueResolved Stage = "issue_resolved"
)

// Category groups stages for timelines and reporting.
type Category string

const (
	CategoryAssignment Category = "assignment"
	CategoryPickup     Category = "pickup"
	CategoryInspection Category = "inspection"
	CategoryProcessing Category = "processing"
	CategoryFinishing  Category = "finishing"
	CategoryDelivery   Category = "delivery"
	CategoryIssue      Category = "issue"
)

func getCategories() map[Stage]Category {
	return map[Stage]Category{
		Assigned:            CategoryAssignment,
		Accepted:            CategoryAssignment,
		Rejected:            CategoryAssignment,
		PickupScheduled:     CategoryPickup,
		PickupStarted:       CategoryPickup,
		PickupCompleted:     CategoryPickup,
		InspectionStarted:   CategoryInspection,
		InspectionCompleted: CategoryInspection,
		Washing:             CategoryProcessing,
		StainTreatment:      CategoryProcessing,
		DryCleaning:         CategoryProcessing,
		Drying:              CategoryProcessing,
		Ironing:             CategoryFinishing,
		Folding:             CategoryFinishing,
		QualityCheck:        CategoryFinishing,
		Packaging:           CategoryFinishing,
		ReadyForDelivery:    CategoryFinishing,
		OutForDelivery:      CategoryDelivery,
		Delivered:           CategoryDelivery,
		IssueReported:       CategoryIssue,
		IssueResolved:       CategoryIssue,
	}
}

func getProjections() map[Stage]order.Status {
	return map[Stage]order.Status{
		PickupCompleted:   order.PickedUp,
		InspectionStarted: order.InProgress,
		Washing:           order.InProgress,
		ReadyForDelivery:  order.Ready,
		OutForDelivery:    order.OutForDelivery,
		Delivered:         order.Delivered,
	}
}

// Parse converts the wire name of a stage.
func Parse(raw string) (Stage, error) {
	s := Stage(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Stage) Validate() error {
	if _, ok := getCategories()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a known stage", string(s)))
	}
	return nil
}

func (s Stage) String() string {
	return string(s)
}

// Category returns the coarse group of s. Unknown stages have an empty category.
func (s Stage) Category() Category {
	return getCategories()[s]
}

// ProjectedStatus returns the order status a stage drives the order to, if any.
func (s Stage) ProjectedStatus() (order.Status, bool) {
	status, ok := getProjections()[s]
	return status, ok
}

// RequiresPhoto reports whether the stage must carry at least one photo.
func (s Stage) RequiresPhoto() bool {
	return s == Delivered
}

// Stages lists every known stage in pipeline order.
func Stages() []Stage {
	return []Stage{
		Assigned, Accepted, Rejected,
		PickupScheduled, PickupStarted, PickupCompleted,
		InspectionStarted, InspectionCompleted,
		Washing, StainTreatment, DryCleaning, Drying,
		Ironing, Folding, QualityCheck, Packaging, ReadyForDelivery,
		OutForDelivery, Delivered,
		IssueReported, IssueResolved,
	}
}
