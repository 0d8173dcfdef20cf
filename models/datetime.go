package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// UTCTimestampFormat is the only timestamp format the Discovery API
// uses for UTC instants.
const UTCTimestampFormat = "2006-01-02T15:04:05Z"

// UTCDateTime is a timezone-aware instant parsed from the API's fixed
// timestamp format. An absent or empty source string leaves it zero;
// a non-empty unparseable one is a decode error.
type UTCDateTime struct {
	time.Time
}

func (t *UTCDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp is not a string: %w", err)
	}
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(UTCTimestampFormat, s)
	if err != nil {
		return fmt.Errorf("malformed timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t UTCDateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(UTCTimestampFormat))
}
