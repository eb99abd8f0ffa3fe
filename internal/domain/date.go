package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateInputLayout is the date-only representation used for editing and filters.
const DateInputLayout = "2006-01-02"

// ToDateInput converts an ISO-8601 timestamp to yyyy-MM-dd. Empty or
// unparsable input yields "".
func ToDateInput(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", DateInputLayout} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(DateInputLayout)
		}
	}
	return ""
}

// FromDateInput converts a yyyy-MM-dd value to an ISO-8601 timestamp at
// midnight UTC for submission. Empty input yields "".
func FromDateInput(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(DateInputLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want yyyy-MM-dd", s)
	}
	return t.UTC().Format(time.RFC3339), nil
}
