package models

import (
	"encoding/json"
	"fmt"
)

// City is a venue's city block.
type City struct {
	Name *string `json:"name"`
}

// Address is a venue's street address.
type Address struct {
	Line1 *string `json:"line1"`
	Line2 *string `json:"line2"`
	Line3 *string `json:"line3"`
}

// State is a state/province code plus display name.
type State struct {
	Name      *string `json:"name"`
	StateCode *string `json:"stateCode"`
}

// Country is a country code plus display name.
type Country struct {
	Name        *string `json:"name"`
	CountryCode *string `json:"countryCode"`
}

// Location holds geographic coordinates. The API serves them as
// fixed-precision strings; they are kept as-is and never coerced to
// binary floats here.
type Location struct {
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// Market is a Ticketmaster market reference.
type Market struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// DMA is a designated market area reference. The API serves DMA IDs as
// numbers; json.Number keeps them opaque.
type DMA struct {
	ID json.Number `json:"id"`
}

// BoxOfficeInfo is a venue's box office details block.
type BoxOfficeInfo struct {
	PhoneNumberDetail     *string `json:"phoneNumberDetail"`
	OpenHoursDetail       *string `json:"openHoursDetail"`
	AcceptedPaymentDetail *string `json:"acceptedPaymentDetail"`
	WillCallDetail        *string `json:"willCallDetail"`
}

// GeneralInfo is a venue's rules text block.
type GeneralInfo struct {
	GeneralRule *string `json:"generalRule"`
	ChildRule   *string `json:"childRule"`
}

// SocialAccount is one social media handle.
type SocialAccount struct {
	Handle *string `json:"handle"`
}

// Social holds a venue's social media handles.
type Social struct {
	Twitter *SocialAccount `json:"twitter"`
}

// Venue is a Ticketmaster venue. Every field is optional on the wire;
// absent fields stay nil.
type Venue struct {
	ID                      *string        `json:"id"`
	Name                    *string        `json:"name"`
	URL                     *string        `json:"url"`
	Test                    *bool          `json:"test"`
	Locale                  *string        `json:"locale"`
	PostalCode              *string        `json:"postalCode"`
	Timezone                *string        `json:"timezone"`
	City                    *City          `json:"city"`
	State                   *State         `json:"state"`
	Country                 *Country       `json:"country"`
	Address                 *Address       `json:"address"`
	Location                *Location      `json:"location"`
	Markets                 []Market       `json:"markets"`
	DMAs                    []DMA          `json:"dmas"`
	BoxOfficeInfo           *BoxOfficeInfo `json:"boxOfficeInfo"`
	GeneralInfo             *GeneralInfo   `json:"generalInfo"`
	Social                  *Social        `json:"social"`
	Images                  []Image        `json:"images"`
	ParkingDetail           *string        `json:"parkingDetail"`
	AccessibleSeatingDetail *string        `json:"accessibleSeatingDetail"`
	Links                   *Links         `json:"_links"`
}

func (v *Venue) Kind() ResourceKind { return KindVenues }

// MarketIDs flattens the venue's market references into plain IDs.
func (v *Venue) MarketIDs() []string {
	ids := make([]string, 0, len(v.Markets))
	for _, m := range v.Markets {
		if m.ID != nil {
			ids = append(ids, *m.ID)
		}
	}
	return ids
}

// DMAIDs flattens the venue's DMA references into plain IDs.
func (v *Venue) DMAIDs() []string {
	ids := make([]string, 0, len(v.DMAs))
	for _, d := range v.DMAs {
		if d.ID != "" {
			ids = append(ids, d.ID.String())
		}
	}
	return ids
}

// Coordinates returns the venue's latitude/longitude strings, false
// when either is absent.
func (v *Venue) Coordinates() (lat, lon string, ok bool) {
	if v.Location == nil || v.Location.Latitude == nil || v.Location.Longitude == nil {
		return "", "", false
	}
	return *v.Location.Latitude, *v.Location.Longitude, true
}

// LocationSummary aggregates all location-based data into one block.
type LocationSummary struct {
	Address    string
	PostalCode string
	City       string
	StateCode  string
	Timezone   string
	Latitude   string
	Longitude  string
}

// LocationSummary collects the venue's address, city, state code,
// timezone and coordinates, with absent fields left empty.
func (v *Venue) LocationSummary() LocationSummary {
	var s LocationSummary
	if v.Address != nil && v.Address.Line1 != nil {
		s.Address = *v.Address.Line1
	}
	if v.PostalCode != nil {
		s.PostalCode = *v.PostalCode
	}
	if v.City != nil && v.City.Name != nil {
		s.City = *v.City.Name
	}
	if v.State != nil && v.State.StateCode != nil {
		s.StateCode = *v.State.StateCode
	}
	if v.Timezone != nil {
		s.Timezone = *v.Timezone
	}
	s.Latitude, s.Longitude, _ = v.Coordinates()
	return s
}

func (v *Venue) String() string {
	loc := v.LocationSummary()
	return fmt.Sprintf("'%s' at %s in %s %s",
		deref(v.Name), loc.Address, loc.City, loc.StateCode)
}

// deref is shared by the String helpers across the package.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
