package utils

import (
	"encoding/json"
	"strings"
)

// StringOrNumber accepts a JSON string or number, e.g. the envelope status field.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}

	*s = StringOrNumber(strings.TrimSpace(string(b)))
	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}
