package model

import (
	"fmt"
	"strings"
	"time"
)

// Wire format for timestamps: ISO-8601 local date-time, no zone.
const localTimeLayout = "2006-01-02T15:04:05"

// LocalTime marshals as ISO-8601 local date-time without a zone offset,
// the format the clients exchange on every endpoint.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime { return LocalTime{t} }

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(localTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	// Fractional seconds are accepted but not required.
	for _, layout := range []string{localTimeLayout, "2006-01-02T15:04:05.999999999"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid date-time %q", s)
}
