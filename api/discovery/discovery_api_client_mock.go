package discovery

import (
	"context"
	"fmt"
	"log/slog"

	"tm-discovery/config"
	"tm-discovery/models"
	"tm-discovery/util"
)

// DiscoveryApiClientMock serves canned responses from the JSON
// fixtures under resources/, so everything above the transport can run
// without an API key or network access.
type DiscoveryApiClientMock struct {
	logger *slog.Logger
}

// NewDiscoveryApiClientMock creates a new instance of DiscoveryApiClientMock
func NewDiscoveryApiClientMock(logger *slog.Logger) *DiscoveryApiClientMock {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoveryApiClientMock{logger: logger}
}

func (c *DiscoveryApiClientMock) searchFixture(resource string) (*PagedResponse, error) {
	page, err := util.ReadPageFromJSON(config.GetResourcePath(resource), config.DISCOVERY_ROOT_URL)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", resource, err)
	}
	return newPagedResponse(page, c, c.logger), nil
}

func (c *DiscoveryApiClientMock) SearchEvents(ctx context.Context, filter EventFilter) (*PagedResponse, error) {
	return c.searchFixture(config.EVENT_SEARCH_RESOURCE)
}

func (c *DiscoveryApiClientMock) SearchVenues(ctx context.Context, filter VenueFilter) (*PagedResponse, error) {
	return c.searchFixture(config.VENUE_SEARCH_RESOURCE)
}

func (c *DiscoveryApiClientMock) SearchAttractions(ctx context.Context, filter AttractionFilter) (*PagedResponse, error) {
	return c.searchFixture(config.ATTRACTION_SEARCH_RESOURCE)
}

func (c *DiscoveryApiClientMock) SearchClassifications(ctx context.Context, filter ClassificationFilter) (*PagedResponse, error) {
	return c.searchFixture(config.CLASSIFICATION_SEARCH_RESOURCE)
}

func (c *DiscoveryApiClientMock) EventsByLocation(ctx context.Context, latitude, longitude, radius, unit string) (*PagedResponse, error) {
	return c.SearchEvents(ctx, EventFilter{})
}

func (c *DiscoveryApiClientMock) VenuesByName(ctx context.Context, venueName, stateCode string) (*PagedResponse, error) {
	return c.SearchVenues(ctx, VenueFilter{})
}

func (c *DiscoveryApiClientMock) EventByID(ctx context.Context, eventID string) (*models.Event, error) {
	return util.ReadEventFromJSON(config.GetResourcePath(config.EVENT_STATIC_RESOURCE))
}

func (c *DiscoveryApiClientMock) VenueByID(ctx context.Context, venueID string) (*models.Venue, error) {
	return util.ReadVenueFromJSON(config.GetResourcePath(config.VENUE_STATIC_RESOURCE))
}

func (c *DiscoveryApiClientMock) AttractionByID(ctx context.Context, attractionID string) (*models.Attraction, error) {
	resp, err := c.SearchAttractions(ctx, AttractionFilter{})
	if err != nil {
		return nil, err
	}
	if resp.FirstPage().Len() == 0 {
		return nil, fmt.Errorf("attraction fixture is empty")
	}
	return &resp.FirstPage().Attractions[0], nil
}

func (c *DiscoveryApiClientMock) ClassificationByID(ctx context.Context, classificationID string) (*models.Classification, error) {
	resp, err := c.SearchClassifications(ctx, ClassificationFilter{})
	if err != nil {
		return nil, err
	}
	if resp.FirstPage().Len() == 0 {
		return nil, fmt.Errorf("classification fixture is empty")
	}
	return &resp.FirstPage().Classifications[0], nil
}

func (c *DiscoveryApiClientMock) SegmentByID(ctx context.Context, segmentID string) (*models.Segment, error) {
	classification, err := c.ClassificationByID(ctx, segmentID)
	if err != nil {
		return nil, err
	}
	return classification.Segment, nil
}

func (c *DiscoveryApiClientMock) GenreByID(ctx context.Context, genreID string) (*models.Genre, error) {
	classification, err := c.ClassificationByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return classification.FindGenre(genreID), nil
}

func (c *DiscoveryApiClientMock) SubgenreByID(ctx context.Context, subgenreID string) (*models.Subgenre, error) {
	classification, err := c.ClassificationByID(ctx, subgenreID)
	if err != nil {
		return nil, err
	}
	return classification.FindSubgenre(subgenreID), nil
}

// FetchPage on the mock re-serves the event search fixture; its single
// page carries no next link, so traversals end after it.
func (c *DiscoveryApiClientMock) FetchPage(ctx context.Context, pageURL string) (*models.Page, error) {
	return util.ReadPageFromJSON(config.GetResourcePath(config.EVENT_SEARCH_RESOURCE), config.DISCOVERY_ROOT_URL)
}
