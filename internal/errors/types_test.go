package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutErrorMessage(t *testing.T) {
	err := Validation("Please paste a valid List Url in the input field.")
	assert.Equal(t, "validation: Please paste a valid List Url in the input field.", err.Error())

	wrapped := External("list", fmt.Errorf("connection refused"))
	assert.Equal(t, "external: external service list failed (caused by: connection refused)", wrapped.Error())
}

func TestTypeOfFollowsChain(t *testing.T) {
	inner := Timeout("load list")
	outer := fmt.Errorf("summary: %w", inner)

	assert.Equal(t, ErrorTypeTimeout, TypeOf(outer))
	assert.True(t, IsType(outer, ErrorTypeTimeout))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeTimeout))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "bad url", UserMessage(fmt.Errorf("wrap: %w", Validation("bad url"))))
	assert.Equal(t, "boom", UserMessage(stderrors.New("boom")))
}

func TestWithContext(t *testing.T) {
	err := Wrap(stderrors.New("eof"), ErrorTypeExternal, "read failed").
		WithContext("url", "https://api.example.com/lists/1")

	assert.Equal(t, "https://api.example.com/lists/1", err.Context["url"])
	assert.ErrorIs(t, err, err.Cause)
}
