// Package errs provides standardized error types for the order-management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//   - Value errors raised by domain constructors (ValueIsRequiredError,
//     ValueIsInvalidError, ObjectNotFoundError)
//   - Operation errors raised by the order workflow (ForbiddenError,
//     ConflictError, ValidationError)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the failure
//
// The HTTP adapter relies on the sentinels to map failures to response
// status codes, so new error types must wrap one of the sentinels.
package errs
