package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date without a time component. Values parsed from
// full timestamps are truncated to the date portion.
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(value string) (DateOnly, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return NewDateOnly(t), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return NewDateOnly(t), nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		return nil
	}
	parsed, err := ParseDateOnly(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
