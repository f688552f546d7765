package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is a 64-bit entity identifier that crosses the JSON boundary as a
// string. Snowflake IDs exceed JavaScript's 53-bit safe integer range, so a
// native JSON number would silently lose precision. Inbound values are
// accepted as either a string or a number.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON encodes the ID as a quoted decimal string.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts `"123"` and `123`.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	parsed, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID %q", data)
	}
	*id = ID(parsed)
	return nil
}
