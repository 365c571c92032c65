// Package kernel holds the value objects shared by every aggregate of the
// laundry fulfillment domain:
//   - UUID: identifiers of orders, partners, stages, item records and actors
//   - Pincode: the postal code that ties an order's pickup address to partner service areas
//
// Zero values of both types are invalid and are rejected by Validate.
package kernel
