package models

// ResourceKind identifies which Discovery resource type a decoded
// entity (or a whole page of entities) belongs to.
type ResourceKind int

const (
	KindNone ResourceKind = iota
	KindEvents
	KindVenues
	KindAttractions
	KindClassifications
)

func (k ResourceKind) String() string {
	switch k {
	case KindEvents:
		return "events"
	case KindVenues:
		return "venues"
	case KindAttractions:
		return "attractions"
	case KindClassifications:
		return "classifications"
	default:
		return "none"
	}
}

// Entity is any decoded Discovery API object that can appear in the
// embedded block of a search page.
type Entity interface {
	Kind() ResourceKind
}
