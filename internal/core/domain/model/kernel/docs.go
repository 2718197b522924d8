// Package kernel provides shared value objects used across the restaurant
// ordering domain model.
//
// The package includes:
//   - UUID: immutable identifier value object wrapping github.com/google/uuid
//   - Money: fixed-point monetary amount (two decimal places) used for menu
//     prices, cart line prices, and order totals
//
// Value objects in this package are immutable, compared by value, and
// validated at construction so downstream aggregates can rely on them
// without re-checking.
package kernel
