// Package order holds the Order aggregate of the laundry fulfillment workflow.
//
// The package includes:
//   - Order: the aggregate root owning garment lines, financials, partner
//     decision and the status history
//   - Status: the lifecycle state machine with the cancellation guard
//   - Financials: monetary totals with the derived total
//
// Key business rules:
//   - status only moves along the transition table; delivered and cancelled are terminal
//   - cancellation is allowed from pending or confirmed only
//   - an assigned partner decides exactly once; acceptance confirms the order,
//     rejection clears the assignment and reopens it as pending
//   - every applied change appends a StatusChange row and a StatusChanged event
package order
