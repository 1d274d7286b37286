package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := NotFound("menu.Get", "menu item %s not found", "abc")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.Equal(t, "menu.Get: menu item abc not found", err.Error())
}

func TestError_WrappedStillMatches(t *testing.T) {
	cause := errors.New("socket closed")
	err := fmt.Errorf("outer: %w", Wrap(ErrConflict, "tables.Create", "table number already exists", cause))

	assert.True(t, IsConflict(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "table number already exists", Message(err, "fallback"))
}

func TestMessage_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", Message(&Error{Kind: ErrValidation}, "fallback"))
}

func TestError_DefaultsToKindText(t *testing.T) {
	err := &Error{Kind: ErrForbidden}
	assert.Equal(t, "forbidden", err.Error())
	assert.True(t, IsForbidden(err))
}
