package principal

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role represents a named group a user can belong to. Plain customers carry no
// role at all; membership in a role grants the permissions enumerated by the
// access policy.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleManager grants full administrative rights over menu and orders.
	RoleManager

	// RoleDeliveryCrew permits updating the status of orders assigned to the
	// member, and nothing else.
	RoleDeliveryCrew
)

// Group names as stored in the membership tables and exposed over the API.
const (
	ManagerGroupName      = "Manager"
	DeliveryCrewGroupName = "Delivery crew"
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "Unknown",
		RoleManager:      ManagerGroupName,
		RoleDeliveryCrew: DeliveryCrewGroupName,
	}
}

// RoleFromString resolves a group name to a Role.
// Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	switch s {
	case ManagerGroupName:
		return RoleManager, nil
	case DeliveryCrewGroupName:
		return RoleDeliveryCrew, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%q is not a recognized group", s),
		)
	}
}

// Validate checks if the Role value is a recognized group.
func (r Role) Validate() error {
	if r != RoleManager && r != RoleDeliveryCrew {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the group name for the role.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}
