package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_UnmarshalFullShape(t *testing.T) {
	// Arrange
	body := `{
		"id": "vvG1zZfbJQZqDK",
		"name": "Widespread Panic",
		"test": false,
		"dates": {
			"start": {
				"localDate": "2026-10-09",
				"localTime": "20:00:00",
				"dateTime": "2026-10-10T00:00:00Z"
			},
			"status": {"code": "onsale"}
		},
		"priceRanges": [{"type": "standard", "currency": "USD", "min": 46.5, "max": 51.5}],
		"classifications": [{
			"primary": true,
			"segment": {"id": "KZFzniwnSyZfZ7v7nJ", "name": "Music"},
			"genre": {"id": "KnvZfZ7vAeA", "name": "Rock"}
		}],
		"_embedded": {
			"venues": [{"id": "KovZpaFEZe", "name": "The Tabernacle"}]
		}
	}`

	// Act
	var event Event
	err := json.Unmarshal([]byte(body), &event)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "Widespread Panic", deref(event.Name))

	start, ok := event.StartDateTime()
	if !ok {
		t.Fatalf("Expected a start instant")
	}
	assert.Equal(t, time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), start)

	localDate, _ := event.LocalStartDate()
	assert.Equal(t, "2026-10-09", localDate)
	localTime, _ := event.LocalStartTime()
	assert.Equal(t, "20:00:00", localTime)

	status, _ := event.StatusCode()
	assert.Equal(t, "onsale", status)

	venues := event.Venues()
	if len(venues) != 1 {
		t.Fatalf("Expected 1 embedded venue, got %d", len(venues))
	}
	assert.Equal(t, "The Tabernacle", deref(venues[0].Name))

	assert.Equal(t, []string{"Rock"}, event.GenreNames())
}

func TestEvent_PriceRangePrecision(t *testing.T) {
	// Values like 46.5 and 0.1 must round-trip exactly, not as the
	// nearest binary float.
	body := `{"priceRanges": [{"min": 46.5, "max": 51.1}]}`

	var event Event
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(event.PriceRanges) != 1 {
		t.Fatalf("Expected 1 price range, got %d", len(event.PriceRanges))
	}
	assert.Equal(t, "46.5", event.PriceRanges[0].Min.String())
	assert.Equal(t, "51.1", event.PriceRanges[0].Max.String())
}

func TestEvent_OptionalFieldsStayNil(t *testing.T) {
	var event Event
	if err := json.Unmarshal([]byte(`{"id": "e1"}`), &event); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Nil(t, event.Name)
	assert.Nil(t, event.Dates)
	assert.Empty(t, event.Venues())
	assert.Empty(t, event.Attractions())

	if _, ok := event.StartDateTime(); ok {
		t.Errorf("Expected no start instant")
	}
	if _, ok := event.StatusCode(); ok {
		t.Errorf("Expected no status code")
	}
}

func TestUTCDateTime_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		zero      bool
	}{
		{"Valid", `"2026-10-10T00:00:00Z"`, false, false},
		{"Empty Is Absent", `""`, false, true},
		{"Malformed", `"10/10/2026"`, true, false},
		{"Missing Zone", `"2026-10-10T00:00:00"`, true, false},
		{"Not A String", `42`, true, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var ts UTCDateTime
			err := json.Unmarshal([]byte(test.input), &ts)

			if test.expectErr {
				if err == nil {
					t.Fatalf("Expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if ts.IsZero() != test.zero {
				t.Errorf("Expected zero=%v, got %v", test.zero, ts.IsZero())
			}
		})
	}
}

func TestUTCDateTime_MalformedInsideEvent(t *testing.T) {
	body := `{"dates": {"start": {"dateTime": "not-a-timestamp"}}}`

	var event Event
	err := json.Unmarshal([]byte(body), &event)

	if err == nil {
		t.Fatalf("Expected a decode error for a malformed timestamp, got nil")
	}
}

func TestEvent_String(t *testing.T) {
	name := "Test Event"
	event := Event{Name: &name}

	out := event.String()

	assert.Contains(t, out, "Test Event")
	assert.Contains(t, out, "Event:")
}
