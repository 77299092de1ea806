package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	guiderr "github.com/vfsformats/guid-go/errors"
)

func TestGuidErrors(t *testing.T) {

	t.Run("errors.Is/As works with invalid argument error values", func(t *testing.T) {
		// Create an invalid argument error and wrap it in a regular error
		var argError error = NewInvalidArgumentError(ErrMissingBuffer, nil)
		e := errors.Wrap(argError, "is wrapped")

		m := e.Error()
		assert.NotNil(t, m)
		assert.Equal(t, "is wrapped: guid: invalid argument: missing buffer", m)

		// Should return true for its sentinel value
		assert.True(t, errors.Is(e, guiderr.InvalidArgument))

		// should not match the other sentinel
		assert.False(t, errors.Is(e, guiderr.AllocationFailure))

		// should return true for the actual error value
		assert.True(t, errors.Is(e, argError))

		// should successfully retrieve argError as an instance of GuidInvalidArgumentError
		var ae guiderr.GuidInvalidArgumentError
		assert.True(t, errors.As(e, &ae))
		assert.Equal(t, ae, argError)

		// a stack trace is attached when the cause has none
		assert.NotNil(t, ae.StackTrace())
	})

	t.Run("errors.Is/As works with allocation failure values", func(t *testing.T) {
		cause := errors.New("cause")
		var allocError error = NewAllocationFailure(ErrAllocationFailed, cause)
		e := errors.Wrap(allocError, "is wrapped")

		m := e.Error()
		assert.NotNil(t, m)
		assert.Equal(t, "is wrapped: guid: allocation failure: unable to allocate result string: cause", m)

		// Should return true for its sentinel value
		assert.True(t, errors.Is(e, guiderr.AllocationFailure))

		// should return true for cause if the failure is unwrapping correctly
		assert.True(t, errors.Is(e, cause))

		// should successfully retrieve allocError as an instance of GuidAllocationFailure
		var af guiderr.GuidAllocationFailure
		assert.True(t, errors.As(e, &af))
		assert.Equal(t, af, allocError)

		// transient by nature, the caller may retry
		assert.True(t, af.IsRetryable())
	})

	t.Run("WrapErr adds a stack trace only once", func(t *testing.T) {
		cause := errors.New("cause")

		wrapped := WrapErr(cause, "outer")
		assert.Equal(t, "outer: cause", wrapped.Error())

		var st stackTracer
		assert.True(t, errors.As(wrapped, &st))

		rewrapped := WrapErrf(wrapped, "outer %s", "again")
		assert.Equal(t, "outer again: outer: cause", rewrapped.Error())
		assert.True(t, errors.Is(rewrapped, cause))
	})
}
