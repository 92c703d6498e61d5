package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FlexString accepts a JSON string, number or null. Form widgets send numbers for
// some fields (age, hospital) and strings for others.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flex string: unsupported value %s", string(b))
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexID is a numeric backend identifier that may arrive as a number or a numeric string.
type FlexID int64

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	raw := strings.Trim(string(b), `"`)
	if raw == "" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("flex id: %q is not an integer", raw)
	}
	*id = FlexID(n)
	return nil
}

func (id FlexID) String() string { return strconv.FormatInt(int64(id), 10) }

// ErrInvalidID is wrapped by ParseID failures.
var ErrInvalidID = errors.New("invalid id")

// ParseID coerces a path or form value into a backend identifier.
func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidID, s)
	}
	return n, nil
}
