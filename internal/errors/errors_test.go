package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var errStorage = New("connection refused")

func TestRetryable(t *testing.T) {
	err := Retryable(errStorage, "load due reminders")

	assert.True(t, IsRetryable(err))
	assert.True(t, IsRetryable(Wrap(err, "dispatch pass")))
	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, "load due reminders: connection refused", err.Error())

	assert.False(t, IsRetryable(errStorage))
	assert.False(t, IsRetryable(nil))
	assert.NoError(t, Retryable(nil, "ignored"))
}

type codeError struct{ code int }

func (e *codeError) Error() string { return "code" }

func TestAsType(t *testing.T) {
	err := pkgerrors.Wrap(&codeError{code: 409}, "create record")

	got, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, 409, got.code)

	_, ok = AsType[*codeError](errStorage)
	assert.False(t, ok)
}
