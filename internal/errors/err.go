package errors

import (
	"fmt"

	"github.com/pkg/errors"
	guiderr "github.com/vfsformats/guid-go/errors"
)

// Error messages
const (
	// Invalid argument (caller supplied a bad value)
	ErrMissingBuffer         = "missing buffer"
	ErrUnsupportedBufferSize = "unsupported buffer size"
	ErrInvalidTextFormat     = "unsupported GUID string format"

	// Allocation failure (result value could not be built)
	ErrAllocationFailed = "unable to allocate result string"
)

type guidError struct {
	err     error
	errType string
}

var _ error = (*guidError)(nil)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func newGuidError(msg string, err error) guidError {
	// create an error with the new message
	if err == nil {
		err = errors.New(msg)
	} else {
		err = errors.WithMessage(err, msg)
	}

	// if the source error does not have a stack trace in its
	// error chain add a stack trace
	var st stackTracer
	if ok := errors.As(err, &st); !ok {
		err = errors.WithStack(err)
	}

	return guidError{
		err:     err,
		errType: "unknown",
	}
}

func (e guidError) Error() string {
	return fmt.Sprintf("guid: %s: %s", e.errType, e.err.Error())
}

func (e guidError) Cause() error {
	return e.err
}

func (e guidError) StackTrace() errors.StackTrace {
	var st stackTracer
	if ok := errors.As(e.err, &st); ok {
		return st.StackTrace()
	}

	return nil
}

// invalidArgumentError are errors caused by bad caller input, e.g. a nil
// buffer, a buffer that is not exactly 16 bytes, malformed GUID text
type invalidArgumentError struct {
	guidError
}

var _ guiderr.GuidInvalidArgumentError = (*invalidArgumentError)(nil)

func (e invalidArgumentError) Is(err error) bool {
	return err == guiderr.InvalidArgument
}

func (e invalidArgumentError) Unwrap() error {
	return e.err
}

func NewInvalidArgumentError(msg string, err error) *invalidArgumentError {
	gErr := newGuidError(msg, err)
	gErr.errType = "invalid argument"
	return &invalidArgumentError{guidError: gErr}
}

// allocationFailure reports that the result value could not be built.
// Deterministic inputs cannot fail twice for this reason once resources
// are available again, so it is marked retryable for the caller.
type allocationFailure struct {
	guidError
}

var _ guiderr.GuidAllocationFailure = (*allocationFailure)(nil)

func (e allocationFailure) Is(err error) bool {
	return err == guiderr.AllocationFailure
}

func (e allocationFailure) Unwrap() error {
	return e.err
}

func (e allocationFailure) IsRetryable() bool {
	return true
}

func NewAllocationFailure(msg string, err error) *allocationFailure {
	gErr := newGuidError(msg, err)
	gErr.errType = "allocation failure"
	return &allocationFailure{guidError: gErr}
}

// wraps an error and adds trace if not already present
func WrapErr(err error, msg string) error {
	var st stackTracer
	if ok := errors.As(err, &st); ok {
		// wrap passed in error in a new error with the message
		return errors.WithMessage(err, msg)
	}

	// wrap passed in error in errors with the message and a stack trace
	return errors.Wrap(err, msg)
}

// adds a stack trace if not already present
func WrapErrf(err error, format string, args ...interface{}) error {
	var st stackTracer
	if ok := errors.As(err, &st); ok {
		// wrap passed in error in a new error with the formatted message
		return errors.WithMessagef(err, format, args...)
	}

	// wrap passed in error in errors with the formatted message and a stack trace
	return errors.Wrapf(err, format, args...)
}
