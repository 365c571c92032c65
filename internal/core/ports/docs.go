// Package ports defines the contracts between the application core and its
// adapters: repositories bound to a unit of work, the order status subscriber,
// the outbox message publisher and the photo URL resolver.
package ports
