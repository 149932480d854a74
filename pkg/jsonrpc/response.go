package jsonrpc

import (
	"encoding/json"
	"math"
	"strconv"
)

/*
Response is a JSON-RPC 2.0 reply, correlated to a request purely by carrying
the same id. It wraps a single generic JSON document rather than imposing a
rigid schema: accessors read the conventional members ("jsonrpc", "id",
"result", "error") and degrade to zero values when a member is absent or
mistyped, so partially formed or externally sourced documents can always be
inspected. Nothing stops both result and error being set at once; choosing
between them is the reader's job.
*/
type Response struct {
	value any
}

// NewResponse builds a minimal response document holding only the protocol
// version and the given id. Result and error stay absent until set.
func NewResponse(id uint64) *Response {
	return &Response{
		value: map[string]any{
			"jsonrpc": Version,
			"id":      id,
		},
	}
}

// ResponseFromJSON wraps an existing JSON value as-is. No validation happens
// here; feed it a malformed document and the accessors simply degrade.
func ResponseFromJSON(value any) *Response {
	return &Response{value: value}
}

// AsJSON returns the full backing document.
func (resp *Response) AsJSON() any {
	return resp.value
}

// ID returns the id member coerced to uint64, or 0 when the member is absent
// or not representable as an unsigned integer.
func (resp *Response) ID() uint64 {
	doc, ok := resp.value.(map[string]any)

	if !ok {
		return 0
	}

	switch id := doc["id"].(type) {
	case uint64:
		return id
	case int:
		if id < 0 {
			return 0
		}
		return uint64(id)
	case json.Number:
		n, err := strconv.ParseUint(id.String(), 10, 64)
		if err != nil {
			return 0
		}
		return n
	case float64:
		if id < 0 || id >= 1<<64 || id != math.Trunc(id) {
			return 0
		}
		return uint64(id)
	}

	return 0
}

// Result returns the result member, or nil when absent.
func (resp *Response) Result() any {
	return resp.member("result")
}

// SetResult writes the result member, overwriting any previous value. The
// error member is never touched.
func (resp *Response) SetResult(result any) {
	resp.setMember("result", result)
}

// Err returns the error member, or nil when absent. Named Err rather than
// Error so the Response itself does not read as a Go error.
func (resp *Response) Err() any {
	return resp.member("error")
}

// SetError writes the error member, overwriting any previous value. The
// result member is never touched.
func (resp *Response) SetError(err any) {
	resp.setMember("error", err)
}

// String renders the response as indented JSON for humans. Falls back to the
// literal "Null" if rendering fails.
func (resp *Response) String() string {
	raw, err := json.MarshalIndent(resp.value, "", "  ")

	if err != nil {
		return "Null"
	}

	return string(raw)
}

func (resp *Response) member(key string) any {
	doc, ok := resp.value.(map[string]any)

	if !ok {
		return nil
	}

	return doc[key]
}

// setMember writes one key on the backing document. A non-object backing
// value is promoted to an object first, mirroring how writing into a null
// JSON document behaves.
func (resp *Response) setMember(key string, value any) {
	doc, ok := resp.value.(map[string]any)

	if !ok {
		doc = map[string]any{}
		resp.value = doc
	}

	doc[key] = value
}
