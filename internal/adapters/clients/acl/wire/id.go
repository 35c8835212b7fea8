// Package wire holds JSON types shared by the resource translators.
package wire

import (
	"encoding/json"
	"fmt"
)

// ID is a resource identifier that the remote resource may encode as either
// a JSON string or a JSON number. It is normalized to its string form.
// Marshaling always produces a JSON string.
type ID string

// UnmarshalJSON accepts "7", 7 and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

// String returns the normalized identifier.
func (id ID) String() string { return string(id) }
