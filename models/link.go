package models

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The API appends templated fragments like "{&sort}" to hrefs it
// returns in "_links". They are never valid request URLs.
var templateFragment = regexp.MustCompile(`\{[^{}]*\}`)

// StripTemplateFragments removes every brace-delimited template
// fragment from an href. Best effort, never fails.
func StripTemplateFragments(href string) string {
	return templateFragment.ReplaceAllString(href, "")
}

// ResolveHref turns an href into an absolute URL, prefixing relative
// hrefs with the root URL. Returns false when the href is empty.
func ResolveHref(rootURL, href string) (string, bool) {
	href = StripTemplateFragments(href)
	if href == "" {
		return "", false
	}
	if strings.Contains(href, "://") {
		return href, true
	}
	return rootURL + href, true
}

// Link is one entry of a "_links" object.
type Link struct {
	Href      string
	Templated bool
}

// UnmarshalJSON cleans templated fragments out of the href as it lands.
func (l *Link) UnmarshalJSON(data []byte) error {
	var raw struct {
		Href      string `json:"href"`
		Templated bool   `json:"templated"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Href = StripTemplateFragments(raw.Href)
	l.Templated = raw.Templated
	return nil
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Href      string `json:"href"`
		Templated bool   `json:"templated,omitempty"`
	}{l.Href, l.Templated})
}

// Links is the navigational "_links" block carried by pages and
// entities, keyed by relation name.
type Links struct {
	Self        *Link  `json:"self"`
	Next        *Link  `json:"next"`
	Prev        *Link  `json:"prev"`
	Venues      []Link `json:"venues"`
	Attractions []Link `json:"attractions"`
}
