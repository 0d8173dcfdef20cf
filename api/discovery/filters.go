package discovery

import (
	"net/url"
	"strconv"
)

// Filter fields use the library's snake_case naming and are translated
// through attrMap when building the request. Zero values mean "not
// set" and are omitted, matching the API's defaults (page 0, size 20,
// locale en).

// searchParams accumulates query parameters, translating names
// through attrMap as they land.
type searchParams struct {
	values url.Values
}

func newSearchParams() *searchParams {
	return &searchParams{values: url.Values{}}
}

func (p *searchParams) set(name, value string) {
	if value == "" {
		return
	}
	p.values.Set(apiParamName(name), value)
}

func (p *searchParams) setInt(name string, value int) {
	if value == 0 {
		return
	}
	p.values.Set(apiParamName(name), strconv.Itoa(value))
}

func (p *searchParams) setYesNoOnly(name, value string) {
	if value == "" {
		return
	}
	p.values.Set(apiParamName(name), yesNoOnly(value))
}

// EventFilter holds the search criteria for event searches.
type EventFilter struct {
	Keyword             string
	EventID             string
	Sort                string
	Latlong             string
	Radius              string
	Unit                string // "miles" or "km"
	StartDateTime       string // YYYY-MM-DDTHH:MM:SSZ
	EndDateTime         string // YYYY-MM-DDTHH:MM:SSZ
	OnsaleStartDateTime string
	OnsaleEndDateTime   string
	CountryCode         string
	StateCode           string // ex: "GA", not "Georgia"
	VenueID             string
	AttractionID        string
	SegmentID           string
	SegmentName         string
	ClassificationName  string
	ClassificationID    string
	MarketID            string
	PromoterID          string
	DMAID               string
	IncludeTBA          string // yes/no/only
	IncludeTBD          string // yes/no/only
	IncludeTest         string // yes/no/only
	ClientVisibility    string
	Source              string
	Locale              string
	Page                int
	Size                int
}

func (f EventFilter) params() url.Values {
	p := newSearchParams()
	p.set("keyword", f.Keyword)
	p.set("id", f.EventID)
	p.set("sort", f.Sort)
	p.set("latlong", f.Latlong)
	p.set("radius", f.Radius)
	p.set("unit", f.Unit)
	p.set("start_date_time", f.StartDateTime)
	p.set("end_date_time", f.EndDateTime)
	p.set("onsale_start_date_time", f.OnsaleStartDateTime)
	p.set("onsale_end_date_time", f.OnsaleEndDateTime)
	p.set("country_code", f.CountryCode)
	p.set("state_code", f.StateCode)
	p.set("venue_id", f.VenueID)
	p.set("attraction_id", f.AttractionID)
	p.set("segment_id", f.SegmentID)
	p.set("segment_name", f.SegmentName)
	p.set("classification_name", f.ClassificationName)
	p.set("classification_id", f.ClassificationID)
	p.set("market_id", f.MarketID)
	p.set("promoter_id", f.PromoterID)
	p.set("dma_id", f.DMAID)
	p.setYesNoOnly("include_tba", f.IncludeTBA)
	p.setYesNoOnly("include_tbd", f.IncludeTBD)
	p.setYesNoOnly("include_test", f.IncludeTest)
	p.set("client_visibility", f.ClientVisibility)
	p.set("source", f.Source)
	p.set("locale", f.Locale)
	p.setInt("page", f.Page)
	p.setInt("size", f.Size)
	return p.values
}

// VenueFilter holds the search criteria for venue searches.
type VenueFilter struct {
	Keyword     string
	VenueID     string
	Sort        string
	StateCode   string
	CountryCode string
	Source      string
	IncludeTest string
	Locale      string
	Page        int
	Size        int
}

func (f VenueFilter) params() url.Values {
	p := newSearchParams()
	p.set("keyword", f.Keyword)
	p.set("id", f.VenueID)
	p.set("sort", f.Sort)
	p.set("state_code", f.StateCode)
	p.set("country_code", f.CountryCode)
	p.set("source", f.Source)
	p.setYesNoOnly("include_test", f.IncludeTest)
	p.set("locale", f.Locale)
	p.setInt("page", f.Page)
	p.setInt("size", f.Size)
	return p.values
}

// AttractionFilter holds the search criteria for attraction searches.
type AttractionFilter struct {
	Keyword      string
	AttractionID string
	Sort         string
	Source       string
	IncludeTest  string
	Locale       string
	Page         int
	Size         int
}

func (f AttractionFilter) params() url.Values {
	p := newSearchParams()
	p.set("keyword", f.Keyword)
	p.set("id", f.AttractionID)
	p.set("sort", f.Sort)
	p.set("source", f.Source)
	p.setYesNoOnly("include_test", f.IncludeTest)
	p.set("locale", f.Locale)
	p.setInt("page", f.Page)
	p.setInt("size", f.Size)
	return p.values
}

// ClassificationFilter holds the search criteria for classification
// searches.
type ClassificationFilter struct {
	Keyword          string
	ClassificationID string
	Sort             string
	Source           string
	IncludeTest      string
	Locale           string
	Page             int
	Size             int
}

func (f ClassificationFilter) params() url.Values {
	p := newSearchParams()
	p.set("keyword", f.Keyword)
	p.set("id", f.ClassificationID)
	p.set("sort", f.Sort)
	p.set("source", f.Source)
	p.setYesNoOnly("include_test", f.IncludeTest)
	p.set("locale", f.Locale)
	p.setInt("page", f.Page)
	p.setInt("size", f.Size)
	return p.values
}
