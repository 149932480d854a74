package jsonrpc

import (
	"bytes"
	"encoding/json"
)

// Version is the protocol version stamped on every message. Must be "2.0".
const Version = "2.0"

// decodeValue turns raw JSON bytes into a generic value. Numbers are kept as
// json.Number so identifiers above 2^53 survive the trip through a generic
// document.
func decodeValue(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any

	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	return value, nil
}
