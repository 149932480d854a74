package errors

import (
	"fmt"
)

/*
RpcError represents a JSON-RPC error object, usable both as the value of a
response's "error" member and as a regular Go error.
*/
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

/*
Error implements the error interface for RpcError.
*/
func (e *RpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Convenience errors (JSON‑RPC reserved codes  -32700 .. -32000)
// Application specific codes should use other ranges.
var (
	ErrParseError     = &RpcError{Code: -32700, Message: "Parse error"}
	ErrInvalidRequest = &RpcError{Code: -32600, Message: "Invalid Request"}
	ErrMethodNotFound = &RpcError{Code: -32601, Message: "Method not found"}
	ErrInvalidParams  = &RpcError{Code: -32602, Message: "Invalid params"}
	ErrInternal       = &RpcError{Code: -32603, Message: "Internal error"}

	// Application range (-32000 to -32099)
	ErrInsufficientFunds = &RpcError{Code: -32001, Message: "Insufficient funds"}
)

// WithMessagef creates a *copy* of an RpcError with a formatted message.
// It does not modify the original error variable.
func (e *RpcError) WithMessagef(format string, args ...any) *RpcError {
	// Return a new error instance to avoid modifying the global variables
	newErr := *e // Create a shallow copy
	newErr.Message = fmt.Sprintf(format, args...)
	return &newErr
}

// WithData creates a *copy* of an RpcError carrying additional data.
// It does not modify the original error variable.
func (e *RpcError) WithData(data any) *RpcError {
	newErr := *e
	newErr.Data = data
	return &newErr
}
