package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// Auto-assignment run outcomes reported to the RunObserver.
const (
	OutcomeAssigned = "assigned"
	OutcomeIdle     = "idle"
	OutcomeFailed   = "failed"
)

const (
	autoAssignSchedule     = "*/5 * * * * *"
	maxAssignmentsPerRun   = 20
	defaultRejectCooldown  = 5 * time.Second
	autoAssignRunTimeout   = 30 * time.Second
	autoAssignComponentKey = "auto_assign_job"
)

type autoAssigner interface {
	Handle(ctx context.Context, cmd commands.AutoAssignPartnerCommand) (*order.Order, error)
}

// AutoAssignJob assigns pending orders to the best ranked eligible partner.
// Each run assigns orders until the pool is empty, no partner fits the oldest
// order, or maxAssignmentsPerRun is reached.
type AutoAssignJob struct {
	handler  autoAssigner
	observer RunObserver
	cron     *cron.Cron
	logger   *slog.Logger
	cooldown time.Duration
}

func NewAutoAssignJob(handler autoAssigner, observer RunObserver, logger *slog.Logger) *AutoAssignJob {
	if observer == nil {
		observer = NopObserver{}
	}
	return &AutoAssignJob{
		handler:  handler,
		observer: observer,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", autoAssignComponentKey),
		cooldown: defaultRejectCooldown,
	}
}

// Start schedules the job every five seconds.
func (j *AutoAssignJob) Start() error {
	if _, err := j.cron.AddFunc(autoAssignSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), autoAssignRunTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-assign job started", "schedule", autoAssignSchedule)
	return nil
}

// Run performs one assignment pass and returns the number of orders assigned.
func (j *AutoAssignJob) Run(ctx context.Context) int {
	cmd, err := commands.NewAutoAssignPartnerCommand(kernel.SystemActor(), j.cooldown)
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto-assign command rejected", "error", err)
		j.observer.ObserveAutoAssign(OutcomeFailed)
		return 0
	}

	assigned := 0
	for assigned < maxAssignmentsPerRun {
		o, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			if errors.Is(handleErr, commands.ErrNoOrderFound) || errors.Is(handleErr, commands.ErrNoEligiblePartnerFound) {
				break
			}
			j.logger.ErrorContext(ctx, "Auto-assign job failed", "error", handleErr)
			j.observer.ObserveAutoAssign(OutcomeFailed)
			return assigned
		}

		assigned++
		j.logger.InfoContext(ctx, "Order assigned",
			"order_id", o.ID().String(),
			"partner_id", o.AssignedPartner().String(),
		)
	}

	if assigned > 0 {
		j.observer.ObserveAutoAssign(OutcomeAssigned)
	} else {
		j.observer.ObserveAutoAssign(OutcomeIdle)
	}
	return assigned
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *AutoAssignJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto-assign job stopped")
}
