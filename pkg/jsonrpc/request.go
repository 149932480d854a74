package jsonrpc

import (
	"encoding/json"

	"github.com/theapemachine/ink-rpc/pkg/errors"
)

/*
Request is an outbound JSON-RPC 2.0 call. Every request built in a process
carries a unique, strictly increasing id, so responses can be correlated back
to the call that produced them. The id is stamped at construction and never
changes; method and params start at their zero values and are filled in by the
owner through the chained setters.
*/
type Request struct {
	method string
	params any
	id     uint64
}

// requestEnvelope is the wire shape. Field order here is the field order on
// the wire.
type requestEnvelope struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      uint64 `json:"id"`
}

// NewRequest builds an empty request with a fresh id from the process-wide
// sequence. Safe to call from any number of goroutines.
func NewRequest() *Request {
	return NewRequestWithGenerator(defaultSequence)
}

// NewRequestWithGenerator builds an empty request with an id from the given
// Generator. Use this when a test, or an independent id scope, needs its own
// sequence instead of the process-wide one.
func NewRequestWithGenerator(gen Generator) *Request {
	return &Request{
		method: "",
		params: nil,
		id:     gen.Next(),
	}
}

/*
RequestFromJSON deserializes a generic JSON value into a Request. This is the
one strict entry point of the package: the value must be an object carrying
all four members ("jsonrpc", "method", "params", "id") with the right types,
or a *errors.RpcError is returned and the message should be rejected.
*/
func RequestFromJSON(value any) (*Request, error) {
	raw, err := json.Marshal(value)

	if err != nil {
		return nil, errors.ErrParseError.WithData(err.Error())
	}

	var members map[string]json.RawMessage

	if err = json.Unmarshal(raw, &members); err != nil {
		return nil, errors.ErrInvalidRequest.WithData(err.Error())
	}

	for _, key := range []string{"jsonrpc", "method", "params", "id"} {
		if _, ok := members[key]; !ok {
			return nil, errors.ErrInvalidRequest.WithMessagef(
				"Invalid Request: missing member %q", key,
			)
		}
	}

	var version string

	if err = json.Unmarshal(members["jsonrpc"], &version); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessagef(
			"Invalid Request: jsonrpc must be a string",
		)
	}

	req := &Request{}

	if err = json.Unmarshal(members["method"], &req.method); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessagef(
			"Invalid Request: method must be a string",
		)
	}

	if err = json.Unmarshal(members["id"], &req.id); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessagef(
			"Invalid Request: id must be an unsigned integer",
		)
	}

	if req.params, err = decodeValue(members["params"]); err != nil {
		return nil, errors.ErrInvalidRequest.WithData(err.Error())
	}

	return req, nil
}

// ID returns the identifier stamped at construction.
func (req *Request) ID() uint64 {
	return req.id
}

// Method returns the method name. Empty until SetMethod is called.
func (req *Request) Method() string {
	return req.method
}

// SetMethod sets the method name. Any string is accepted, including the empty
// one. Returns the request for chaining.
func (req *Request) SetMethod(method string) *Request {
	req.method = method
	return req
}

// Params returns the call parameters. Nil until SetParams is called.
func (req *Request) Params() any {
	return req.params
}

// SetParams sets the call parameters. Any JSON value is accepted: object,
// array, scalar or nil. Returns the request for chaining.
func (req *Request) SetParams(params any) *Request {
	req.params = params
	return req
}

// ToJSON serializes the full request to a generic JSON value. Degrades to nil
// if serialization fails, which the fixed envelope shape should never do
// unless the caller put something unmarshalable into params.
func (req *Request) ToJSON() any {
	raw, err := json.Marshal(req.envelope())

	if err != nil {
		return nil
	}

	value, err := decodeValue(raw)

	if err != nil {
		return nil
	}

	return value
}

// String renders the request as indented JSON for humans. Falls back to the
// literal "{}" if rendering fails.
func (req *Request) String() string {
	raw, err := json.MarshalIndent(req.envelope(), "", "  ")

	if err != nil {
		return "{}"
	}

	return string(raw)
}

func (req *Request) envelope() requestEnvelope {
	return requestEnvelope{
		JSONRPC: Version,
		Method:  req.method,
		Params:  req.params,
		ID:      req.id,
	}
}
