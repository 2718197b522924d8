// Package services contains stateless domain services for the restaurant
// ordering domain.
//
// AccessPolicy centralizes every authorization rule: which orders a principal
// may list, view, update, or delete, and who may manage group membership and
// the menu catalog. Keeping the rules in one pure function makes them
// independently testable and prevents role checks from drifting apart across
// use cases.
package services
