package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	e1 := New("cause1")
	e2 := New("cause2").Wrap(e1)
	e := New("dummy").Wrap(e2)
	e3 := e.Unwrap()
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, e3 == e2)
}

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := New("no packages")
	cause := fmt.Errorf("empty input")

	wrapped := sentinel.Wrap(cause)
	require.Nil(t, sentinel.Unwrap(), "a sentinel must not be mutated by Wrap")

	assert.True(t, Is(wrapped, sentinel))
	assert.True(t, Is(wrapped, cause))
	assert.Equal(t, "no packages", wrapped.Error())
	assert.Equal(t, "no packages: empty input", wrapped.Details())

	// rewrapping a wrapped error still matches the original sentinel
	again := wrapped.Wrap(New("other"))
	assert.True(t, Is(again, sentinel))
	assert.False(t, Is(New("no packages"), sentinel))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", Newf("inner %d", 42))
	var target *Error
	require.True(t, As(err, &target))
	assert.Equal(t, "inner 42", target.Error())
}
