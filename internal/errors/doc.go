// Package errors provides the error handling vocabulary for the dmscreen client.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Mapping from REST responses into the error taxonomy
//   - Error context preservation through wrapping
//   - Validation error helpers with field-keyed messages
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("player not found")
//	err := errors.InvalidArgumentf("invalid condition length: %d", length)
//
// Adding metadata:
//
//	err := errors.NotFound("player not found").
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := gateway.GetPlayer(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get player")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsUnauthenticated(err) {
//	    // Force logout
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	fields := errors.FieldErrors(err)
//
// # Validation Errors
//
// Server-side 422 responses and local precondition checks both produce
// InvalidArgument errors carrying a field -> messages map in
// Meta["validation_errors"], so form layers can render per-field errors.
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("condition_length", input.ConditionLength, 0, 99, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # REST Integration
//
// The API gateway converts HTTP status codes at the boundary:
//
//	if resp.StatusCode >= 400 {
//	    return errors.New(errors.CodeFromHTTPStatus(resp.StatusCode), msg)
//	}
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input or server-side validation failure
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met
//   - Internal: Unexpected failure
//   - Unavailable: Transport failure, no response received
//   - Unauthenticated: Authentication required or token rejected
//   - ResourceExhausted: Rate limit exceeded
package errors
