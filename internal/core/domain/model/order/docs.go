// Package order provides the order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root created exactly once from a non-empty cart,
//     owning immutable item snapshots and a total fixed at creation
//   - Item: an immutable snapshot of a cart line (menu item, quantity, unit
//     price, line price)
//   - Status: a two-state machine (Placed, Delivered) with a defined
//     transition table
//
// Key business rules:
//   - Orders are created from a cart snapshot; the cart is cleared in the
//     same transaction
//   - The total equals the sum of item prices at creation and is never
//     recomputed
//   - Delivery crew assignment is orthogonal to status
//   - Placed -> Delivered is the normal fulfillment transition; the reverse
//     transition exists for Managers reopening a mis-marked delivery
//
// Who may perform which transition is decided by the access policy in the
// services package; this package only defines which transitions exist.
package order
