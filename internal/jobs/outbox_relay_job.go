package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	outboxRelaySchedule   = "* * * * * *"
	outboxRelayBatchSize  = 100
	outboxRelayRunTimeout = 10 * time.Second
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob hands committed outbox messages to the broker every second.
type OutboxRelayJob struct {
	handler  outboxRelayer
	observer RunObserver
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOutboxRelayJob(handler outboxRelayer, observer RunObserver, logger *slog.Logger) *OutboxRelayJob {
	if observer == nil {
		observer = NopObserver{}
	}
	return &OutboxRelayJob{
		handler:  handler,
		observer: observer,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the relay every second. A run still in progress makes the
// next tick a no-op.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(outboxRelaySchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), outboxRelayRunTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", outboxRelaySchedule)
	return nil
}

// Run relays one batch and returns the number of published messages.
func (j *OutboxRelayJob) Run(ctx context.Context) int {
	cmd, err := commands.NewRelayOutboxCommand(outboxRelayBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Relay command rejected", "error", err)
		return 0
	}

	published, err := j.handler.Handle(ctx, cmd)
	j.observer.ObserveOutboxRelay(published, err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return 0
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
	return published
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
