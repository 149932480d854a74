package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRpcErrorImplementsError(t *testing.T) {
	var err error = ErrInvalidRequest
	assert.Equal(t, "RPC error -32600: Invalid Request", err.Error())
}

func TestReservedCodes(t *testing.T) {
	assert.Equal(t, -32700, ErrParseError.Code)
	assert.Equal(t, -32600, ErrInvalidRequest.Code)
	assert.Equal(t, -32601, ErrMethodNotFound.Code)
	assert.Equal(t, -32602, ErrInvalidParams.Code)
	assert.Equal(t, -32603, ErrInternal.Code)
	assert.Equal(t, -32001, ErrInsufficientFunds.Code)
}

func TestWithMessagefCopies(t *testing.T) {
	derived := ErrInvalidRequest.WithMessagef("Invalid Request: missing member %q", "id")

	assert.Equal(t, ErrInvalidRequest.Code, derived.Code)
	assert.Equal(t, "Invalid Request: missing member \"id\"", derived.Message)

	// The shared variable must never be mutated
	assert.Equal(t, "Invalid Request", ErrInvalidRequest.Message)
	assert.NotSame(t, ErrInvalidRequest, derived)
}

func TestWithDataCopies(t *testing.T) {
	derived := ErrInsufficientFunds.WithData(map[string]any{"available_balance": 1749.25})

	assert.Equal(t, ErrInsufficientFunds.Code, derived.Code)
	assert.NotNil(t, derived.Data)
	assert.Nil(t, ErrInsufficientFunds.Data)
}

func TestRpcErrorJSONShape(t *testing.T) {
	raw, err := json.Marshal(ErrParseError)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"code":-32700,"message":"Parse error"}`, string(raw))

	raw, err = json.Marshal(ErrInternal.WithData("details"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"code":-32603,"message":"Internal error","data":"details"}`, string(raw))
}
