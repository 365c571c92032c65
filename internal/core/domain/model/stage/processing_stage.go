package stage

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrProcessingStageIsNotConstructed is returned for a ProcessingStage that bypassed the constructors.
	ErrProcessingStageIsNotConstructed = errors.New("ProcessingStage must be created via NewProcessingStage constructor")

	// ErrPhotoIsRequired is returned when a stage that needs proof carries no photo.
	ErrPhotoIsRequired = errs.NewValueIsRequiredError("photos")
)

// ProcessingStage is one append-only entry of an order's stage timeline.
// Only completedAt changes after creation and only once.
type ProcessingStage struct {
	id               kernel.UUID
	orderID          kernel.UUID
	stage            Stage
	performedBy      kernel.UUID
	notes            string
	photos           []string
	hasIssue         bool
	issueDescription string
	startedAt        time.Time
	completedAt      *time.Time
	guard            guard.ConstructorGuard
}

// Report carries what a partner device submits for a stage.
type Report struct {
	Stage            Stage
	PerformedBy      kernel.UUID
	Notes            string
	Photos           []string
	HasIssue         bool
	IssueDescription string
}

// NewProcessingStage validates a report and starts a stage at startedAt.
// issue_reported always carries the issue flag; delivered requires a photo.
func NewProcessingStage(id, orderID kernel.UUID, r Report, startedAt time.Time) (*ProcessingStage, error) {
	photos := cleanPhotos(r.Photos)

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		r.Stage.Validate(),
		r.PerformedBy.Validate(),
	); err != nil {
		return nil, err
	}
	if r.Stage.RequiresPhoto() && len(photos) == 0 {
		return nil, ErrPhotoIsRequired
	}

	return &ProcessingStage{
		id:               id,
		orderID:          orderID,
		stage:            r.Stage,
		performedBy:      r.PerformedBy,
		notes:            strings.TrimSpace(r.Notes),
		photos:           photos,
		hasIssue:         r.HasIssue || r.Stage == IssueReported,
		issueDescription: strings.TrimSpace(r.IssueDescription),
		startedAt:        startedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreProcessingStage rebuilds a stored stage without re-applying
// submission rules.
func RestoreProcessingStage(
	id, orderID kernel.UUID,
	r Report,
	startedAt time.Time,
	completedAt *time.Time,
) (*ProcessingStage, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), r.Stage.Validate()); err != nil {
		return nil, err
	}

	return &ProcessingStage{
		id:               id,
		orderID:          orderID,
		stage:            r.Stage,
		performedBy:      r.PerformedBy,
		notes:            r.Notes,
		photos:           r.Photos,
		hasIssue:         r.HasIssue,
		issueDescription: r.IssueDescription,
		startedAt:        startedAt,
		completedAt:      completedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (p *ProcessingStage) Validate() error {
	if p == nil {
		return ErrProcessingStageIsNotConstructed
	}
	return p.guard.Validate(ErrProcessingStageIsNotConstructed)
}

func (p *ProcessingStage) ID() kernel.UUID          { return p.id }
func (p *ProcessingStage) OrderID() kernel.UUID     { return p.orderID }
func (p *ProcessingStage) Stage() Stage             { return p.stage }
func (p *ProcessingStage) Category() Category       { return p.stage.Category() }
func (p *ProcessingStage) PerformedBy() kernel.UUID { return p.performedBy }
func (p *ProcessingStage) Notes() string            { return p.notes }
func (p *ProcessingStage) HasIssue() bool           { return p.hasIssue }
func (p *ProcessingStage) IssueDescription() string { return p.issueDescription }
func (p *ProcessingStage) StartedAt() time.Time     { return p.startedAt }
func (p *ProcessingStage) CompletedAt() *time.Time  { return p.completedAt }
func (p *ProcessingStage) IsCompleted() bool        { return p.completedAt != nil }

// Photos returns the storage keys of the attached photos.
func (p *ProcessingStage) Photos() []string {
	out := make([]string, len(p.photos))
	copy(out, p.photos)
	return out
}

// Complete closes the stage at `at` and returns its duration. A completed stage
// keeps its original completion time, so repeated calls return the same duration.
func (p *ProcessingStage) Complete(at time.Time) time.Duration {
	if p.completedAt == nil {
		if at.Before(p.startedAt) {
			at = p.startedAt
		}
		p.completedAt = &at
	}
	return p.completedAt.Sub(p.startedAt)
}

// Duration is defined only once the stage is completed.
func (p *ProcessingStage) Duration() (time.Duration, bool) {
	if p.completedAt == nil {
		return 0, false
	}
	return p.completedAt.Sub(p.startedAt), true
}

func cleanPhotos(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, photo := range photos {
		if photo = strings.TrimSpace(photo); photo != "" {
			out = append(out, photo)
		}
	}
	return out
}
