package util

import (
	"encoding/json"
	"fmt"
	"os"

	"tm-discovery/models"
)

// ReadPageFromJSON loads a search response body from disk and decodes
// it into a Page, resolving links against rootURL.
func ReadPageFromJSON(filePath, rootURL string) (*models.Page, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	page, err := models.ParsePage(data, rootURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page from %q: %w", filePath, err)
	}
	return page, nil
}

// ReadEventFromJSON loads a single Event from JSON on disk.
func ReadEventFromJSON(filePath string) (*models.Event, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Event: %w", err)
	}
	return &event, nil
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*models.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venue models.Venue
	if err := json.Unmarshal(data, &venue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Venue: %w", err)
	}
	return &venue, nil
}

// PrintPagePartially prints key fields of a search result page.
func PrintPagePartially(page *models.Page) {
	fmt.Printf("Page: %d/%d (size %d, %d total elements)\n",
		page.Number+1, page.TotalPages, page.Size, page.TotalElements)
	fmt.Printf("Kind: %s, entities: %d\n", page.EntityKind, page.Len())
	if next, ok := page.NextLink(); ok {
		fmt.Printf("Next: %s\n", next)
	}
}

// PrintEventPartially prints key fields of an event.
func PrintEventPartially(event *models.Event) {
	fmt.Println(event.String())
}
