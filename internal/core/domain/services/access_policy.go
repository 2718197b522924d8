package services

import (
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
)

// Visibility classifies which orders a principal may list.
type Visibility int

const (
	// VisibilityOwn limits listing to orders owned by the principal.
	// This is also the fallback for unrecognized role combinations.
	VisibilityOwn Visibility = iota

	// VisibilityAll exposes every order (Managers and superusers).
	VisibilityAll

	// VisibilityAssigned limits listing to orders assigned to the principal
	// as delivery crew.
	VisibilityAssigned
)

// UpdateScope classifies what a principal may change on a specific order.
type UpdateScope int

const (
	// UpdateScopeNone denies any update.
	UpdateScopeNone UpdateScope = iota

	// UpdateScopeStatusOnly permits changing the status field and nothing
	// else (assigned delivery crew).
	UpdateScopeStatusOnly

	// UpdateScopeFull permits changing any mutable field (Managers).
	UpdateScopeFull
)

// AccessPolicy is the single source of truth for every role check in the
// ordering domain. It is a pure function of the principal's resolved role set
// and the resource's owner/assignee; both the order use cases and the group
// membership operations consult it instead of duplicating role logic.
//
// Rules (superuser counts as Manager throughout):
//   - Listing orders: customers see their own, Managers see all, delivery
//     crew see orders assigned to them; anything else falls back to own.
//   - Viewing an order's items: the owner or a Manager.
//   - Replace / delete: Manager only, including against the owner.
//   - Partial update: the assigned crew member may touch status only;
//     Managers get full scope; everyone else is denied.
//   - Group membership and menu management: Manager only.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// OrderVisibility returns the listing scope for the principal.
func (AccessPolicy) OrderVisibility(p principal.Principal) Visibility {
	switch {
	case p.IsManager():
		return VisibilityAll
	case p.IsDeliveryCrew():
		return VisibilityAssigned
	default:
		return VisibilityOwn
	}
}

// CanViewOrder reports whether the principal may read the order's items.
func (AccessPolicy) CanViewOrder(p principal.Principal, o *order.Order) bool {
	return p.IsManager() || o.CustomerID().IsEqual(p.ID())
}

// CanReplaceOrder reports whether the principal may fully update an order.
func (AccessPolicy) CanReplaceOrder(p principal.Principal) bool {
	return p.IsManager()
}

// CanDeleteOrder reports whether the principal may delete an order.
func (AccessPolicy) CanDeleteOrder(p principal.Principal) bool {
	return p.IsManager()
}

// PartialUpdateScope returns what the principal may change on the given
// order via partial update. Role eligibility is decided here; payload-shape
// checks happen afterwards in the use case.
func (AccessPolicy) PartialUpdateScope(p principal.Principal, o *order.Order) UpdateScope {
	if p.IsManager() {
		return UpdateScopeFull
	}
	if p.IsDeliveryCrew() && o.IsAssignedTo(p.ID()) {
		return UpdateScopeStatusOnly
	}
	return UpdateScopeNone
}

// CanManageGroups reports whether the principal may change or list group
// membership.
func (AccessPolicy) CanManageGroups(p principal.Principal) bool {
	return p.IsManager()
}

// CanManageMenu reports whether the principal may create, update, or delete
// catalog entries. Reading the catalog is open to everyone.
func (AccessPolicy) CanManageMenu(p principal.Principal) bool {
	return p.IsManager()
}
