package models

import "encoding/json"

// The classification hierarchy is a strict three-level tree
// (Segment -> Genre -> Subgenre) with a parallel Type -> Subtype chain.
// Classification search responses nest child nodes under "_embedded",
// while the same nodes embedded in events arrive flat; the custom
// unmarshalers below hoist "_embedded" so both shapes land in one tree.

// Subgenre is a leaf node of the classification tree.
type Subgenre struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Links *Links  `json:"_links"`
}

// Genre is the middle node, optionally carrying its subgenres.
type Genre struct {
	ID        *string    `json:"id"`
	Name      *string    `json:"name"`
	Links     *Links     `json:"_links"`
	Subgenres []Subgenre `json:"subgenres"`
}

func (g *Genre) UnmarshalJSON(data []byte) error {
	type genre Genre
	var raw struct {
		genre
		Embedded *struct {
			Subgenres []Subgenre `json:"subgenres"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = Genre(raw.genre)
	if g.Subgenres == nil && raw.Embedded != nil {
		g.Subgenres = raw.Embedded.Subgenres
	}
	return nil
}

// Segment is the root node, optionally carrying its genres.
type Segment struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	Links  *Links  `json:"_links"`
	Genres []Genre `json:"genres"`
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	type segment Segment
	var raw struct {
		segment
		Embedded *struct {
			Genres []Genre `json:"genres"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Segment(raw.segment)
	if s.Genres == nil && raw.Embedded != nil {
		s.Genres = raw.Embedded.Genres
	}
	return nil
}

// ClassificationSubtype is a leaf of the parallel type chain.
type ClassificationSubtype struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Links *Links  `json:"_links"`
}

// ClassificationType optionally carries its subtypes.
type ClassificationType struct {
	ID       *string                 `json:"id"`
	Name     *string                 `json:"name"`
	Links    *Links                  `json:"_links"`
	Subtypes []ClassificationSubtype `json:"subtypes"`
}

func (t *ClassificationType) UnmarshalJSON(data []byte) error {
	type classificationType ClassificationType
	var raw struct {
		classificationType
		Embedded *struct {
			Subtypes []ClassificationSubtype `json:"subtypes"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ClassificationType(raw.classificationType)
	if t.Subtypes == nil && raw.Embedded != nil {
		t.Subtypes = raw.Embedded.Subtypes
	}
	return nil
}

// Classification is a hierarchy entry as returned by classification
// search. For the shape embedded under events see EventClassification.
type Classification struct {
	ID       *string                `json:"id"`
	Name     *string                `json:"name"`
	Primary  *bool                  `json:"primary"`
	Family   *bool                  `json:"family"`
	Segment  *Segment               `json:"segment"`
	Genre    *Genre                 `json:"genre"`
	Subgenre *Subgenre              `json:"subGenre"`
	Type     *ClassificationType    `json:"type"`
	Subtype  *ClassificationSubtype `json:"subType"`
	Links    *Links                 `json:"_links"`
}

func (c *Classification) Kind() ResourceKind { return KindClassifications }

// EventClassification is the same conceptual hierarchy as serialized
// under an event or attraction: each node arrives flat (id/name only).
type EventClassification struct {
	Primary  *bool                  `json:"primary"`
	Family   *bool                  `json:"family"`
	Segment  *Segment               `json:"segment"`
	Genre    *Genre                 `json:"genre"`
	Subgenre *Subgenre              `json:"subGenre"`
	Type     *ClassificationType    `json:"type"`
	Subtype  *ClassificationSubtype `json:"subType"`
}

// FindGenre returns the genre with the given ID from the segment tree.
func (c *Classification) FindGenre(genreID string) *Genre {
	if c.Segment == nil {
		return nil
	}
	for i := range c.Segment.Genres {
		g := &c.Segment.Genres[i]
		if g.ID != nil && *g.ID == genreID {
			return g
		}
	}
	return nil
}

// FindSubgenre returns the subgenre with the given ID from anywhere in
// the segment tree.
func (c *Classification) FindSubgenre(subgenreID string) *Subgenre {
	if c.Segment == nil {
		return nil
	}
	for i := range c.Segment.Genres {
		for j := range c.Segment.Genres[i].Subgenres {
			sg := &c.Segment.Genres[i].Subgenres[j]
			if sg.ID != nil && *sg.ID == subgenreID {
				return sg
			}
		}
	}
	return nil
}
