// Package errors provides structured error handling for the career API.
//
// Errors carry a Code that maps onto HTTP status codes at the handler
// boundary, an operator-facing message, and optional metadata. Use the
// constructor functions (NotFound, InvalidArgument, ...) at the point of
// failure and the Is* helpers at decision points:
//
//	if input.Slot > save.MaxSlot {
//	    return errors.InvalidArgumentf("slot %d out of range", input.Slot)
//	}
//
//	if errors.IsNotFound(err) {
//	    // empty slot, not a failure
//	}
//
// Wrap and Wrapf preserve the code of an already-coded error, so a
// NotFound from the repository stays a NotFound after the store wraps it
// with context.
package errors
