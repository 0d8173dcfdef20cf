package models

// Attraction is a performer/team/act. The test flag marks sandbox
// entities the API only returns when asked to include them.
type Attraction struct {
	ID              *string               `json:"id"`
	Name            *string               `json:"name"`
	URL             *string               `json:"url"`
	Test            *bool                 `json:"test"`
	Locale          *string               `json:"locale"`
	Images          []Image               `json:"images"`
	Classifications []EventClassification `json:"classifications"`
	Links           *Links                `json:"_links"`
}

func (a *Attraction) Kind() ResourceKind { return KindAttractions }
