package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStripTemplateFragments(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		expected string
	}{
		{
			name:     "Sort Fragment",
			href:     "/discovery/v2/events.json?page=1&size=20{&sort}",
			expected: "/discovery/v2/events.json?page=1&size=20",
		},
		{
			name:     "Multiple Fragments",
			href:     "/discovery/v2/events.json{?page,size}{&sort}",
			expected: "/discovery/v2/events.json",
		},
		{
			name:     "No Fragment",
			href:     "/discovery/v2/events.json?page=1",
			expected: "/discovery/v2/events.json?page=1",
		},
		{
			name:     "Empty Href",
			href:     "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := StripTemplateFragments(test.href)
			if got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
			if strings.Contains(got, "{") || strings.Contains(got, "}") {
				t.Errorf("Expected no brace-delimited substrings to remain, got %q", got)
			}
		})
	}
}

func TestResolveHref_RelativePrefixedWithRoot(t *testing.T) {
	resolved, ok := ResolveHref("https://app.ticketmaster.com", "/discovery/v2/events.json?page=1{&sort}")

	if !ok {
		t.Fatalf("Expected href to resolve")
	}
	expected := "https://app.ticketmaster.com/discovery/v2/events.json?page=1"
	if resolved != expected {
		t.Errorf("Expected %q, got %q", expected, resolved)
	}
}

func TestResolveHref_AbsolutePassesThrough(t *testing.T) {
	resolved, ok := ResolveHref("https://app.ticketmaster.com", "http://other.host/page")

	if !ok {
		t.Fatalf("Expected href to resolve")
	}
	if resolved != "http://other.host/page" {
		t.Errorf("Expected absolute href unchanged, got %q", resolved)
	}
}

func TestResolveHref_EmptyHref(t *testing.T) {
	_, ok := ResolveHref("https://app.ticketmaster.com", "")
	if ok {
		t.Errorf("Expected empty href to report absent")
	}

	// A pure template fragment strips down to nothing
	_, ok = ResolveHref("https://app.ticketmaster.com", "{&sort}")
	if ok {
		t.Errorf("Expected pure template href to report absent")
	}
}

func TestLink_UnmarshalStripsFragments(t *testing.T) {
	var link Link
	err := json.Unmarshal([]byte(`{"href": "/events?page=1{&sort}", "templated": true}`), &link)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if link.Href != "/events?page=1" {
		t.Errorf("Expected cleaned href, got %q", link.Href)
	}
	if !link.Templated {
		t.Errorf("Expected templated flag preserved")
	}
}
