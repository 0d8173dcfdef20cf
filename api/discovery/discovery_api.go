package discovery

import (
	"context"

	"tm-discovery/models"
)

// DiscoveryAPI defines the interface for interacting with the
// Ticketmaster Discovery API. It exists so callers can swap in the
// fixture-backed mock during development and tests.
type DiscoveryAPI interface {
	// Searches return the first page wrapped in a PagedResponse;
	// further pages are fetched lazily as the caller traverses.
	SearchEvents(ctx context.Context, filter EventFilter) (*PagedResponse, error)
	SearchVenues(ctx context.Context, filter VenueFilter) (*PagedResponse, error)
	SearchAttractions(ctx context.Context, filter AttractionFilter) (*PagedResponse, error)
	SearchClassifications(ctx context.Context, filter ClassificationFilter) (*PagedResponse, error)

	EventByID(ctx context.Context, eventID string) (*models.Event, error)
	VenueByID(ctx context.Context, venueID string) (*models.Venue, error)
	AttractionByID(ctx context.Context, attractionID string) (*models.Attraction, error)
	ClassificationByID(ctx context.Context, classificationID string) (*models.Classification, error)

	// Classification tree lookups, resolved by walking the
	// Segment -> Genre -> Subgenre hierarchy the API returns.
	SegmentByID(ctx context.Context, segmentID string) (*models.Segment, error)
	GenreByID(ctx context.Context, genreID string) (*models.Genre, error)
	SubgenreByID(ctx context.Context, subgenreID string) (*models.Subgenre, error)

	// Convenience searches
	EventsByLocation(ctx context.Context, latitude, longitude, radius, unit string) (*PagedResponse, error)
	VenuesByName(ctx context.Context, venueName, stateCode string) (*PagedResponse, error)

	// FetchPage dereferences a "_links" href into a Page. The
	// pagination driver uses it to follow next links.
	FetchPage(ctx context.Context, pageURL string) (*models.Page, error)
}
