// Package partner models the laundry businesses that fulfil orders and the
// capacity ledger used during assignment.
//
// A Partner owns its ServiceArea entries (the pincodes it serves) and a load
// counter bounded by its daily capacity. TakeOrder and ReleaseOrder are the only
// ways the load changes; callers hold a row lock on the partner while calling them.
package partner
