package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	err := Validation("revision notes are required")

	assert.True(t, IsValidation(err))
	assert.False(t, IsPrecondition(err))
	assert.Equal(t, "revision notes are required", err.Error())
}

func TestPrecondition(t *testing.T) {
	err := Precondition("slot %s is not in edited state", "slot-1")

	assert.True(t, IsPrecondition(err))
	assert.Equal(t, "slot slot-1 is not in edited state", err.Error())
}

func TestPathResolution(t *testing.T) {
	err := PathResolution("video slot not found for client %s", "client-1")

	assert.True(t, IsPathResolution(err))
}

func TestExternalAdapter_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalAdapter(cause, "instagram publish failed")

	assert.True(t, IsExternalAdapter(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("approve: %w", Precondition("no edited video"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindPrecondition, kind)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Precondition("conflict")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(PathResolution("missing")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(ExternalAdapter(nil, "down")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("other")))
}
