package errors

import "github.com/pkg/errors"

// value to be used with errors.Is() to determine if an error chain contains an invalid argument error
var InvalidArgument error = errors.New("Invalid Argument")

// value to be used with errors.Is() to determine if an error chain contains an allocation failure
var AllocationFailure error = errors.New("Allocation Failure")

// Base interface for errors returned by the guid package
type GuidError interface {
	// Descriptive message describing the error
	Error() string

	// Stack trace associated with the error.  May be nil.
	StackTrace() errors.StackTrace

	// Underlying causative error. May be nil.
	Cause() error
}

// An error caused by an invalid caller-supplied value.
// Example: a nil buffer, a buffer whose length is not 16 bytes, or
// malformed GUID text. Not retryable; the caller must supply a
// corrected value.
type GuidInvalidArgumentError interface {
	GuidError
}

// A failure to allocate the result value. The formatter itself never
// partially constructs output; the caller may choose to retry once
// resources are available.
type GuidAllocationFailure interface {
	GuidError

	IsRetryable() bool
}
