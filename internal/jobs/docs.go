// Package jobs provides scheduled background tasks for the laundry service.
//
// Jobs are driven by github.com/robfig/cron/v3 with second resolution.
//
// # Available Jobs
//
// 1. AutoAssignJob - Runs every five seconds and assigns pending orders to the best ranked eligible partner
// 2. OutboxRelayJob - Runs every second and publishes committed outbox messages to Kafka
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewAutoAssignJob(autoAssignHandler, metrics, logger),
//		jobs.NewOutboxRelayJob(relayHandler, metrics, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The assignment job treats an empty pool and a pool without eligible partners as idle runs
// - The relay job logs every failure; the batch stays in the outbox and is retried on the next tick
// - Failed job starts stop any already running jobs
package jobs
