package item

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	minQualityScore = 1
	maxQualityScore = 10
)

var (
	// ErrProcessingIsNotConstructed is returned for a Processing that bypassed the constructors.
	ErrProcessingIsNotConstructed = errors.New("Processing must be created via NewProcessing constructor")

	// ErrAlreadyFinalized is returned for any write to a completed, damaged or lost item.
	ErrAlreadyFinalized = errors.New("item processing already finalized")

	// ErrChargesReasonIsRequired is returned when additional charges come without a reason.
	ErrChargesReasonIsRequired = errs.NewValueIsRequiredError("additional_charges_reason")

	// ErrInvalidTransition is the sentinel wrapped by rejected item status changes.
	ErrInvalidTransition = errs.ErrInvalidTransition
)

// Timestamps are the per-phase times of an item. Each one is written at most
// once and never earlier than the latest one already set.
type Timestamps struct {
	InspectionAt       *time.Time
	WashingStartedAt   *time.Time
	WashingCompletedAt *time.Time
	DryingStartedAt    *time.Time
	DryingCompletedAt  *time.Time
	IroningStartedAt   *time.Time
	IroningCompletedAt *time.Time
	QualityCheckedAt   *time.Time
	PackagedAt         *time.Time
	CompletedAt        *time.Time
}

func (ts *Timestamps) all() []*time.Time {
	return []*time.Time{
		ts.InspectionAt, ts.WashingStartedAt, ts.WashingCompletedAt,
		ts.DryingStartedAt, ts.DryingCompletedAt, ts.IroningStartedAt,
		ts.IroningCompletedAt, ts.QualityCheckedAt, ts.PackagedAt, ts.CompletedAt,
	}
}

func (ts *Timestamps) latest() (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)
	for _, t := range ts.all() {
		if t != nil && (!found || t.After(latest)) {
			latest, found = *t, true
		}
	}
	return latest, found
}

// stamp sets *field once, clamped to the latest timestamp already recorded.
func (ts *Timestamps) stamp(field **time.Time, at time.Time) {
	if *field != nil {
		return
	}
	if latest, ok := ts.latest(); ok && at.Before(latest) {
		at = latest
	}
	*field = &at
}

// Findings are the inspection results attached to an item.
type Findings struct {
	InitialCondition Condition
	FinalCondition   Condition
	HasStains        bool
	StainNotes       string
	StainPhotos      []string
	HasDamage        bool
	DamageNotes      string
	DamagePhotos     []string
}

// Processing tracks one garment line of an order through the plant. It is
// created lazily on the first status update of the line.
type Processing struct {
	id                      kernel.UUID
	orderID                 kernel.UUID
	orderItemID             kernel.UUID
	status                  Status
	findings                Findings
	timestamps              Timestamps
	qualityScore            *int
	additionalCharges       decimal.Decimal
	additionalChargesReason string
	processedBy             *kernel.UUID
	notes                   string
	guard                   guard.ConstructorGuard
}

// NewProcessing starts tracking an order line in the pending state.
func NewProcessing(id, orderID, orderItemID kernel.UUID) (*Processing, error) {
	if err := errors.Join(
		id.Validate(),
		wrapRequired("order_id", orderID.Validate()),
		wrapRequired("order_item_id", orderItemID.Validate()),
	); err != nil {
		return nil, err
	}

	return &Processing{
		id:                id,
		orderID:           orderID,
		orderItemID:       orderItemID,
		status:            Pending,
		additionalCharges: decimal.Zero,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// State is the persisted shape of a Processing record.
type State struct {
	ID                      kernel.UUID
	OrderID                 kernel.UUID
	OrderItemID             kernel.UUID
	Status                  Status
	Findings                Findings
	Timestamps              Timestamps
	QualityScore            *int
	AdditionalCharges       decimal.Decimal
	AdditionalChargesReason string
	ProcessedBy             *kernel.UUID
	Notes                   string
}

// RestoreProcessing rebuilds a stored record.
func RestoreProcessing(s State) (*Processing, error) {
	p, err := NewProcessing(s.ID, s.OrderID, s.OrderItemID)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}

	p.status = s.Status
	p.findings = s.Findings
	p.timestamps = s.Timestamps
	p.qualityScore = s.QualityScore
	p.additionalCharges = s.AdditionalCharges
	p.additionalChargesReason = s.AdditionalChargesReason
	p.processedBy = s.ProcessedBy
	p.notes = s.Notes
	return p, nil
}

// Snapshot returns the persisted shape of the record.
func (p *Processing) Snapshot() State {
	return State{
		ID:                      p.id,
		OrderID:                 p.orderID,
		OrderItemID:             p.orderItemID,
		Status:                  p.status,
		Findings:                p.findings,
		Timestamps:              p.timestamps,
		QualityScore:            p.qualityScore,
		AdditionalCharges:       p.additionalCharges,
		AdditionalChargesReason: p.additionalChargesReason,
		ProcessedBy:             p.processedBy,
		Notes:                   p.notes,
	}
}

func (p *Processing) Validate() error {
	if p == nil {
		return ErrProcessingIsNotConstructed
	}
	return p.guard.Validate(ErrProcessingIsNotConstructed)
}

func (p *Processing) ID() kernel.UUID                    { return p.id }
func (p *Processing) OrderID() kernel.UUID               { return p.orderID }
func (p *Processing) OrderItemID() kernel.UUID           { return p.orderItemID }
func (p *Processing) Status() Status                     { return p.status }
func (p *Processing) Findings() Findings                 { return p.findings }
func (p *Processing) Timestamps() Timestamps             { return p.timestamps }
func (p *Processing) QualityScore() *int                 { return p.qualityScore }
func (p *Processing) AdditionalCharges() decimal.Decimal { return p.additionalCharges }
func (p *Processing) AdditionalChargesReason() string    { return p.additionalChargesReason }
func (p *Processing) ProcessedBy() *kernel.UUID          { return p.processedBy }
func (p *Processing) Notes() string                      { return p.notes }

// Update is a status write from the plant. Nil pointers leave the stored
// value untouched.
type Update struct {
	Status                  Status
	ProcessedBy             kernel.UUID
	InitialCondition        *Condition
	FinalCondition          *Condition
	HasStains               *bool
	StainNotes              *string
	StainPhotos             []string
	HasDamage               *bool
	DamageNotes             *string
	DamagePhotos            []string
	QualityScore            *int
	AdditionalCharges       *decimal.Decimal
	AdditionalChargesReason *string
	Notes                   *string
}

// Apply validates u completely and then applies it. Writing the current status
// only updates fields. Nothing changes when an error is returned.
func (p *Processing) Apply(u Update, at time.Time) error {
	if p.status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if err := p.validate(u); err != nil {
		return err
	}
	if u.Status != p.status && !p.status.CanTransitionTo(u.Status) {
		return errs.NewInvalidTransitionError("item", p.status.String(), u.Status.String())
	}

	p.applyFields(u)
	if u.Status != p.status {
		p.enter(u.Status, at)
	}
	return nil
}

// CalculateProcessingTime returns the hours between inspection and completion.
// ok is false until both are recorded.
func (p *Processing) CalculateProcessingTime() (hours float64, ok bool) {
	start, end := p.timestamps.InspectionAt, p.timestamps.CompletedAt
	if start == nil || end == nil {
		return 0, false
	}
	return end.Sub(*start).Hours(), true
}

func (p *Processing) validate(u Update) error {
	var errList []error

	errList = append(errList, u.Status.Validate(), u.ProcessedBy.Validate())
	if u.InitialCondition != nil {
		errList = append(errList, u.InitialCondition.Validate())
	}
	if u.FinalCondition != nil {
		errList = append(errList, u.FinalCondition.Validate())
	}
	if u.QualityScore != nil && (*u.QualityScore < minQualityScore || *u.QualityScore > maxQualityScore) {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"quality_score", *u.QualityScore, minQualityScore, maxQualityScore,
		))
	}
	if u.AdditionalCharges != nil {
		errList = append(errList, validateCharges(*u.AdditionalCharges, p.chargesReason(u)))
	}

	return errors.Join(errList...)
}

func (p *Processing) chargesReason(u Update) string {
	if u.AdditionalChargesReason != nil {
		return strings.TrimSpace(*u.AdditionalChargesReason)
	}
	return p.additionalChargesReason
}

func validateCharges(charges decimal.Decimal, reason string) error {
	if charges.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"additional_charges", fmt.Errorf("%s is negative", charges.String()),
		)
	}
	if charges.IsPositive() && reason == "" {
		return ErrChargesReasonIsRequired
	}
	return nil
}

func (p *Processing) applyFields(u Update) {
	by := u.ProcessedBy
	p.processedBy = &by

	f := &p.findings
	if u.InitialCondition != nil {
		f.InitialCondition = *u.InitialCondition
	}
	if u.FinalCondition != nil {
		f.FinalCondition = *u.FinalCondition
	}
	if u.HasStains != nil {
		f.HasStains = *u.HasStains
	}
	if u.StainNotes != nil {
		f.StainNotes = strings.TrimSpace(*u.StainNotes)
	}
	if len(u.StainPhotos) > 0 {
		f.StainPhotos = append(f.StainPhotos, u.StainPhotos...)
	}
	if u.HasDamage != nil {
		f.HasDamage = *u.HasDamage
	}
	if u.DamageNotes != nil {
		f.DamageNotes = strings.TrimSpace(*u.DamageNotes)
	}
	if len(u.DamagePhotos) > 0 {
		f.DamagePhotos = append(f.DamagePhotos, u.DamagePhotos...)
	}
	if u.QualityScore != nil {
		score := *u.QualityScore
		p.qualityScore = &score
	}
	if u.AdditionalCharges != nil {
		p.additionalCharges = *u.AdditionalCharges
		p.additionalChargesReason = p.chargesReason(u)
	}
	if u.Notes != nil {
		p.notes = strings.TrimSpace(*u.Notes)
	}
}

// enter moves to next and stamps the phase timestamps it implies.
func (p *Processing) enter(next Status, at time.Time) {
	ts := &p.timestamps

	switch next {
	case Inspecting:
		ts.stamp(&ts.InspectionAt, at)
	case Washing:
		ts.stamp(&ts.WashingStartedAt, at)
	case Drying:
		ts.stamp(&ts.WashingCompletedAt, at)
		ts.stamp(&ts.DryingStartedAt, at)
	case Ironing:
		ts.stamp(&ts.DryingCompletedAt, at)
		ts.stamp(&ts.IroningStartedAt, at)
	case QualityCheck:
		ts.stamp(&ts.IroningCompletedAt, at)
		ts.stamp(&ts.QualityCheckedAt, at)
	case Packaged:
		ts.stamp(&ts.PackagedAt, at)
	case Completed:
		ts.stamp(&ts.CompletedAt, at)
	case Damaged:
		p.findings.HasDamage = true
	case Pending, StainTreating, Lost:
	}

	p.status = next
}

func wrapRequired(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(name, err)
}
