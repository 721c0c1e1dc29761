package http

import (
	"fmt"
	"strings"
	"time"
)

// jsonTime accepts either an RFC 3339 timestamp or a plain yyyy-mm-dd
// date in request bodies.
type jsonTime struct {
	time.Time
}

func (t *jsonTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid time %q: expected RFC 3339 or yyyy-mm-dd", s)
	}
	t.Time = parsed
	return nil
}
