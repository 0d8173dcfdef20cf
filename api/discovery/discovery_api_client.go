package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"tm-discovery/api"
	"tm-discovery/models"
)

// DiscoveryApiClient embeds the common HTTPClient and signs every
// request with the API key. The logger is injected, never global.
type DiscoveryApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	rootURL string
	apiKey  string
	logger  *slog.Logger
}

// NewDiscoveryApiClient creates a new instance of DiscoveryApiClient.
// rootURL is the host prefix used to resolve relative "_links" hrefs
// (the HTTPClient's BaseURL points at the versioned API base beneath
// it). A nil logger falls back to slog.Default().
func NewDiscoveryApiClient(httpClient *api.HTTPClient, rootURL, apiKey string, logger *slog.Logger) *DiscoveryApiClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoveryApiClient{
		HTTPClient: httpClient,
		rootURL:    rootURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// search performs a paginated search against one resource endpoint.
func (c *DiscoveryApiClient) search(ctx context.Context, method string, params url.Values) (*PagedResponse, error) {
	endpoint := "/" + method + ".json"
	params.Set("apikey", c.apiKey)
	c.logger.Debug("discovery search", "method", method, "params", redacted(params))

	status, body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("discovery %s search: %w", method, err)
	}
	if status < 200 || status >= 300 {
		return nil, api.NewApiError(status, c.BaseURL+endpoint, params, body)
	}

	page, err := models.ParsePage(body, c.rootURL)
	if err != nil {
		return nil, err
	}
	return newPagedResponse(page, c, c.logger), nil
}

func (c *DiscoveryApiClient) SearchEvents(ctx context.Context, filter EventFilter) (*PagedResponse, error) {
	return c.search(ctx, "events", filter.params())
}

func (c *DiscoveryApiClient) SearchVenues(ctx context.Context, filter VenueFilter) (*PagedResponse, error) {
	return c.search(ctx, "venues", filter.params())
}

func (c *DiscoveryApiClient) SearchAttractions(ctx context.Context, filter AttractionFilter) (*PagedResponse, error) {
	return c.search(ctx, "attractions", filter.params())
}

func (c *DiscoveryApiClient) SearchClassifications(ctx context.Context, filter ClassificationFilter) (*PagedResponse, error) {
	return c.search(ctx, "classifications", filter.params())
}

// EventsByLocation searches events within a radius of a
// latitude/longitude coordinate.
func (c *DiscoveryApiClient) EventsByLocation(ctx context.Context, latitude, longitude, radius, unit string) (*PagedResponse, error) {
	return c.SearchEvents(ctx, EventFilter{
		Latlong: latitude + "," + longitude,
		Radius:  radius,
		Unit:    unit,
		Sort:    "relevance,desc",
	})
}

// VenuesByName searches venues by name, optionally narrowed by state.
func (c *DiscoveryApiClient) VenuesByName(ctx context.Context, venueName, stateCode string) (*PagedResponse, error) {
	return c.SearchVenues(ctx, VenueFilter{
		Keyword:   venueName,
		StateCode: stateCode,
	})
}

// getEntity fetches and decodes a single entity resource.
func (c *DiscoveryApiClient) getEntity(ctx context.Context, method, entityID string, out interface{}) error {
	endpoint := "/" + method + "/" + entityID
	params := url.Values{}
	params.Set("apikey", c.apiKey)

	status, body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return fmt.Errorf("discovery %s lookup: %w", method, err)
	}
	if status < 200 || status >= 300 {
		return api.NewApiError(status, c.BaseURL+endpoint, params, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &models.MalformedResponseError{Missing: method + " body", Err: err}
	}
	return nil
}

func (c *DiscoveryApiClient) EventByID(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	if err := c.getEntity(ctx, "events", eventID, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *DiscoveryApiClient) VenueByID(ctx context.Context, venueID string) (*models.Venue, error) {
	var venue models.Venue
	if err := c.getEntity(ctx, "venues", venueID, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *DiscoveryApiClient) AttractionByID(ctx context.Context, attractionID string) (*models.Attraction, error) {
	var attraction models.Attraction
	if err := c.getEntity(ctx, "attractions", attractionID, &attraction); err != nil {
		return nil, err
	}
	return &attraction, nil
}

func (c *DiscoveryApiClient) ClassificationByID(ctx context.Context, classificationID string) (*models.Classification, error) {
	var classification models.Classification
	if err := c.getEntity(ctx, "classifications", classificationID, &classification); err != nil {
		return nil, err
	}
	return &classification, nil
}

// SegmentByID returns the Segment matching this ID. The API answers a
// classification lookup for any node of the tree with the whole tree.
func (c *DiscoveryApiClient) SegmentByID(ctx context.Context, segmentID string) (*models.Segment, error) {
	classification, err := c.ClassificationByID(ctx, segmentID)
	if err != nil {
		return nil, err
	}
	return classification.Segment, nil
}

// GenreByID returns the Genre matching this ID.
func (c *DiscoveryApiClient) GenreByID(ctx context.Context, genreID string) (*models.Genre, error) {
	classification, err := c.ClassificationByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return classification.FindGenre(genreID), nil
}

// SubgenreByID returns the Subgenre matching this ID.
func (c *DiscoveryApiClient) SubgenreByID(ctx context.Context, subgenreID string) (*models.Subgenre, error) {
	classification, err := c.ClassificationByID(ctx, subgenreID)
	if err != nil {
		return nil, err
	}
	return classification.FindSubgenre(subgenreID), nil
}

// FetchPage dereferences a next/prev/self href. The API sometimes
// returns incorrectly formatted hrefs, so the parameters are parsed
// out and passed as a fresh query rather than trusting the URL as-is.
func (c *DiscoveryApiClient) FetchPage(ctx context.Context, pageURL string) (*models.Page, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("unusable page link %q: %w", pageURL, err)
	}
	params := parsed.Query()
	params.Set("apikey", c.apiKey)
	parsed.RawQuery = ""
	bare := parsed.String()

	status, body, err := c.GetURL(ctx, bare, params)
	if err != nil {
		return nil, fmt.Errorf("fetching page %s: %w", bare, err)
	}
	if status < 200 || status >= 300 {
		return nil, api.NewApiError(status, bare, params, body)
	}
	return models.ParsePage(body, c.rootURL)
}

// redacted strips the credential before parameters reach a log line.
func redacted(params url.Values) string {
	clean := url.Values{}
	for key, values := range params {
		if key == "apikey" {
			continue
		}
		clean[key] = values
	}
	return clean.Encode()
}
