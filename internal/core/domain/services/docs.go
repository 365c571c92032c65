// Package services contains domain services spanning more than one aggregate.
//
// PartnerAllocator ranks partners for an order's pincode, assigns the best one,
// and keeps the partner capacity ledger in step with acceptance, delivery and
// cancellation of orders.
package services
