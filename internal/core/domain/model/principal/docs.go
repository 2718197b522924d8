// Package principal models the authenticated actor and its resolved role set.
//
// The identity provider (outside this module) authenticates the user and
// resolves group memberships once per request; the resulting Principal is
// passed explicitly into use cases and the access policy. This avoids hidden
// session state and makes every authorization decision a pure function of its
// inputs.
//
// Recognized groups are Manager and Delivery crew. A user in neither group is
// a plain customer. Superusers are treated as Managers everywhere.
package principal
