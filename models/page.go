package models

import (
	"encoding/json"

	"tm-discovery/config"
)

// Page is one server response's worth of paginated search results.
// Immutable once constructed; the embedded entity list is monomorphic
// (exactly one of the typed slices is populated, matching Kind).
type Page struct {
	Number        int
	Size          int
	TotalElements int
	TotalPages    int

	Links Links
	// EntityKind records which embedded resource key was present.
	// KindNone means the response carried no embedded block: a valid
	// "search matched zero items" page.
	EntityKind ResourceKind

	Events          []Event
	Venues          []Venue
	Attractions     []Attraction
	Classifications []Classification

	rootURL string
}

// ParsePage decodes a search response body into a Page. The four page
// metadata fields are mandatory; hrefs in "_links" resolve against
// rootURL. A missing embedded block yields a zero-entity page, not an
// error.
func ParsePage(body []byte, rootURL string) (*Page, error) {
	var raw struct {
		Page *struct {
			Number        *int `json:"number"`
			Size          *int `json:"size"`
			TotalElements *int `json:"totalElements"`
			TotalPages    *int `json:"totalPages"`
		} `json:"page"`
		Links    Links `json:"_links"`
		Embedded *struct {
			Events          []Event          `json:"events"`
			Venues          []Venue          `json:"venues"`
			Attractions     []Attraction     `json:"attractions"`
			Classifications []Classification `json:"classifications"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedResponseError{Missing: "body", Err: err}
	}
	if raw.Page == nil {
		return nil, &MalformedResponseError{Missing: "page"}
	}
	meta := map[string]*int{
		"page.number":        raw.Page.Number,
		"page.size":          raw.Page.Size,
		"page.totalElements": raw.Page.TotalElements,
		"page.totalPages":    raw.Page.TotalPages,
	}
	for field, value := range meta {
		if value == nil {
			return nil, &MalformedResponseError{Missing: field}
		}
	}

	page := &Page{
		Number:        *raw.Page.Number,
		Size:          *raw.Page.Size,
		TotalElements: *raw.Page.TotalElements,
		TotalPages:    *raw.Page.TotalPages,
		Links:         raw.Links,
		rootURL:       rootURL,
	}

	// Resolve which resource type this page embeds, exactly once.
	if raw.Embedded != nil {
		switch {
		case raw.Embedded.Events != nil:
			page.EntityKind = KindEvents
			page.Events = raw.Embedded.Events
		case raw.Embedded.Venues != nil:
			page.EntityKind = KindVenues
			page.Venues = raw.Embedded.Venues
		case raw.Embedded.Attractions != nil:
			page.EntityKind = KindAttractions
			page.Attractions = raw.Embedded.Attractions
		case raw.Embedded.Classifications != nil:
			page.EntityKind = KindClassifications
			page.Classifications = raw.Embedded.Classifications
		}
	}

	return page, nil
}

// Len returns the number of entities embedded in this page.
func (p *Page) Len() int {
	switch p.EntityKind {
	case KindEvents:
		return len(p.Events)
	case KindVenues:
		return len(p.Venues)
	case KindAttractions:
		return len(p.Attractions)
	case KindClassifications:
		return len(p.Classifications)
	default:
		return 0
	}
}

// Entities returns the page's entities in server order.
func (p *Page) Entities() []Entity {
	entities := make([]Entity, 0, p.Len())
	switch p.EntityKind {
	case KindEvents:
		for i := range p.Events {
			entities = append(entities, &p.Events[i])
		}
	case KindVenues:
		for i := range p.Venues {
			entities = append(entities, &p.Venues[i])
		}
	case KindAttractions:
		for i := range p.Attractions {
			entities = append(entities, &p.Attractions[i])
		}
	case KindClassifications:
		for i := range p.Classifications {
			entities = append(entities, &p.Classifications[i])
		}
	}
	return entities
}

// NextLink returns the absolute URL of the next page, false when the
// server supplied none. A missing next link means "no more pages" even
// when totalPages implies otherwise.
func (p *Page) NextLink() (string, bool) {
	if p.Links.Next == nil {
		return "", false
	}
	return ResolveHref(p.rootURL, p.Links.Next.Href)
}

// SelfLink returns the absolute URL of this page, false when absent.
func (p *Page) SelfLink() (string, bool) {
	if p.Links.Self == nil {
		return "", false
	}
	return ResolveHref(p.rootURL, p.Links.Self.Href)
}

// MaxDepthReached reports whether requesting the page after this one
// would exceed the API's paging depth ceiling. Such a request is a
// guaranteed failure and must not be made.
func (p *Page) MaxDepthReached() bool {
	return p.Number*p.Size >= config.MAX_PAGE_DEPTH
}
