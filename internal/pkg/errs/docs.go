// Package errs provides standardized error types for the restaurant ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the business rule violations the core
// can produce:
//   - ObjectNotFoundError: a referenced menu item, order, or user is absent
//   - InvalidStateError: the operation is invalid for the current data
//   - InvalidRequestError: the payload shape is malformed or disallowed
//   - OperationForbiddenError: the principal is authenticated but unauthorized
//   - ValueIsInvalidError / ValueIsRequiredError: constructor validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All of these are recoverable at the boundary: the transport layer maps the
// sentinel to a user-visible status and message, and persistence failures stay
// distinct from the business kinds.
package errs
