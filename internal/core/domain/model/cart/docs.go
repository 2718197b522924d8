// Package cart provides the per-user cart aggregate: pending lines that
// reference catalog items with a price snapshot taken at insertion time.
//
// Key business rules:
//   - At most one line per (user, menu item); duplicate adds merge by summing
//     quantities and keep the original unit price snapshot
//   - Line price is always unitPrice × quantity
//   - The cart total is the sum of line prices, exactly zero when empty
//   - Clearing is idempotent
//
// The cart is the sole input to order creation: an order snapshots the cart's
// lines as immutable order items and the cart is emptied in the same
// transaction.
package cart
