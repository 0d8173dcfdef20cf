package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the sale status block under "dates".
type EventStatus struct {
	Code *string `json:"code"`
}

// EventDate is one boundary of an event's date/time block.
type EventDate struct {
	LocalDate      *string      `json:"localDate"`
	LocalTime      *string      `json:"localTime"`
	DateTime       *UTCDateTime `json:"dateTime"`
	DateTBD        *bool        `json:"dateTBD"`
	DateTBA        *bool        `json:"dateTBA"`
	TimeTBA        *bool        `json:"timeTBA"`
	NoSpecificTime *bool        `json:"noSpecificTime"`
}

// EventDates is an event's date/time block.
type EventDates struct {
	Start    *EventDate   `json:"start"`
	End      *EventDate   `json:"end"`
	Timezone *string      `json:"timezone"`
	Status   *EventStatus `json:"status"`
}

// PriceRange is one pricing tier. Min/max decode through
// decimal.Decimal so currency amounts never round-trip through binary
// floats.
type PriceRange struct {
	Type     *string          `json:"type"`
	Currency *string          `json:"currency"`
	Min      *decimal.Decimal `json:"min"`
	Max      *decimal.Decimal `json:"max"`
}

// EventEmbedded is the "_embedded" block of an event.
type EventEmbedded struct {
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

// Event is a Ticketmaster event. Venues and attractions arrive nested
// under "_embedded"; the accessors hoist them.
type Event struct {
	ID              *string               `json:"id"`
	Name            *string               `json:"name"`
	URL             *string               `json:"url"`
	Test            *bool                 `json:"test"`
	Locale          *string               `json:"locale"`
	Dates           *EventDates           `json:"dates"`
	Classifications []EventClassification `json:"classifications"`
	PriceRanges     []PriceRange          `json:"priceRanges"`
	Images          []Image               `json:"images"`
	Links           *Links                `json:"_links"`
	Embedded        *EventEmbedded        `json:"_embedded"`
}

func (e *Event) Kind() ResourceKind { return KindEvents }

// Venues returns the venues embedded in this event, empty when none.
func (e *Event) Venues() []Venue {
	if e.Embedded == nil {
		return nil
	}
	return e.Embedded.Venues
}

// Attractions returns the attractions embedded in this event.
func (e *Event) Attractions() []Attraction {
	if e.Embedded == nil {
		return nil
	}
	return e.Embedded.Attractions
}

// StatusCode returns the sale status code ("onsale", "cancelled"...),
// false when the server did not provide one.
func (e *Event) StatusCode() (string, bool) {
	if e.Dates == nil || e.Dates.Status == nil || e.Dates.Status.Code == nil {
		return "", false
	}
	return *e.Dates.Status.Code, true
}

// StartDateTime returns the UTC start instant, false when absent.
func (e *Event) StartDateTime() (time.Time, bool) {
	if e.Dates == nil || e.Dates.Start == nil || e.Dates.Start.DateTime == nil {
		return time.Time{}, false
	}
	if e.Dates.Start.DateTime.IsZero() {
		return time.Time{}, false
	}
	return e.Dates.Start.DateTime.Time, true
}

// LocalStartDate returns the local start date string (YYYY-MM-DD).
func (e *Event) LocalStartDate() (string, bool) {
	if e.Dates == nil || e.Dates.Start == nil || e.Dates.Start.LocalDate == nil {
		return "", false
	}
	return *e.Dates.Start.LocalDate, true
}

// LocalStartTime returns the local start time string (HH:MM:SS).
func (e *Event) LocalStartTime() (string, bool) {
	if e.Dates == nil || e.Dates.Start == nil || e.Dates.Start.LocalTime == nil {
		return "", false
	}
	return *e.Dates.Start.LocalTime, true
}

// GenreNames pulls the genre display names out of the event's
// classifications.
func (e *Event) GenreNames() []string {
	var names []string
	for _, cl := range e.Classifications {
		if cl.Genre != nil && cl.Genre.Name != nil {
			names = append(names, *cl.Genre.Name)
		}
	}
	return names
}

func (e *Event) String() string {
	venueNames := make([]string, 0, len(e.Venues()))
	for _, v := range e.Venues() {
		venueNames = append(venueNames, deref(v.Name))
	}
	ranges := make([]string, 0, len(e.PriceRanges))
	for _, pr := range e.PriceRanges {
		var min, max string
		if pr.Min != nil {
			min = pr.Min.String()
		}
		if pr.Max != nil {
			max = pr.Max.String()
		}
		ranges = append(ranges, min+"-"+max)
	}
	status, _ := e.StatusCode()
	startDate, _ := e.LocalStartDate()
	startTime, _ := e.LocalStartTime()

	return fmt.Sprintf(
		"Event:        %s\n"+
			"Venue(s):     %s\n"+
			"Start date:   %s\n"+
			"Start time:   %s\n"+
			"Price ranges: %s\n"+
			"Status:       %s\n"+
			"Genres:       %s\n",
		deref(e.Name),
		strings.Join(venueNames, " / "),
		startDate,
		startTime,
		strings.Join(ranges, ", "),
		status,
		strings.Join(e.GenreNames(), ", "),
	)
}
