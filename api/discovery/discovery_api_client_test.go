package discovery

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"tm-discovery/api"
	"tm-discovery/models"
	"tm-discovery/server"
)

func strPtr(s string) *string { return &s }

// newTestClient mounts a fake Discovery server in an httptest.Server
// and points a real client at it.
func newTestClient(t *testing.T, fake *server.FakeDiscoveryServer, apiKey string) (*DiscoveryApiClient, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(fake.Router())
	t.Cleanup(ts.Close)

	httpClient := api.NewHTTPClient(ts.URL + "/discovery/v2")
	client := NewDiscoveryApiClient(httpClient, ts.URL, apiKey, nil)
	return client, ts
}

func testEvents(n int) []models.Event {
	events := make([]models.Event, n)
	ids := []string{"e1", "e2", "e3", "e4", "e5"}
	for i := range events {
		events[i] = models.Event{ID: strPtr(ids[i]), Name: strPtr("Event " + ids[i])}
	}
	return events
}

func TestSearchEvents_SinglePage(t *testing.T) {
	// Arrange
	fake := server.NewFakeDiscoveryServer(20)
	if err := fake.LoadEvents(testEvents(2)); err != nil {
		t.Fatalf("Failed to load fixture events: %v", err)
	}
	client, _ := newTestClient(t, fake, "key123")

	// Act
	resp, err := client.SearchEvents(context.Background(), EventFilter{Keyword: "jazz"})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	page := resp.FirstPage()
	assert.Equal(t, models.KindEvents, page.EntityKind)
	assert.Equal(t, 2, page.Len())
	assert.Equal(t, 2, page.TotalElements)
	if _, ok := page.NextLink(); ok {
		t.Errorf("Expected no next link on a single-page result")
	}
}

func TestSearchEvents_AllFollowsNextLinks(t *testing.T) {
	// 5 events at 2 per page: three pages chained by next links that
	// carry a "{&sort}" fragment like the real API's.
	fake := server.NewFakeDiscoveryServer(2)
	if err := fake.LoadEvents(testEvents(5)); err != nil {
		t.Fatalf("Failed to load fixture events: %v", err)
	}
	client, _ := newTestClient(t, fake, "key123")

	resp, err := client.SearchEvents(context.Background(), EventFilter{Keyword: "jazz"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	entities, err := resp.All(context.Background())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Len(t, entities, 5)

	// Server order is preserved across page boundaries
	first, ok := entities[0].(*models.Event)
	if !ok {
		t.Fatalf("Expected *models.Event entities, got %T", entities[0])
	}
	assert.Equal(t, "e1", *first.ID)
	last := entities[4].(*models.Event)
	assert.Equal(t, "e5", *last.ID)
}

func TestSearchEvents_MissingKeyIsAuthError(t *testing.T) {
	fake := server.NewFakeDiscoveryServer(20)
	client, _ := newTestClient(t, fake, "")

	_, err := client.SearchEvents(context.Background(), EventFilter{Keyword: "jazz"})

	var apiErr *api.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected an ApiError, got %v", err)
	}
	assert.Equal(t, api.KindAuth, apiErr.Kind)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "Invalid ApiKey", apiErr.Fault.FaultString)
}

func TestFetchPage_BadPageParamIsValidationError(t *testing.T) {
	fake := server.NewFakeDiscoveryServer(20)
	client, ts := newTestClient(t, fake, "key123")

	_, err := client.FetchPage(context.Background(), ts.URL+"/discovery/v2/events.json?page=abc")

	var apiErr *api.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected an ApiError, got %v", err)
	}
	assert.Equal(t, api.KindValidation, apiErr.Kind)
	assert.Equal(t, 400, apiErr.StatusCode)
	if len(apiErr.Errors) != 1 {
		t.Fatalf("Expected 1 error detail, got %d", len(apiErr.Errors))
	}
	assert.Equal(t, "DIS1035", apiErr.Errors[0].Code)
}

func TestEventByID(t *testing.T) {
	fake := server.NewFakeDiscoveryServer(20)
	if err := fake.LoadEvents(testEvents(2)); err != nil {
		t.Fatalf("Failed to load fixture events: %v", err)
	}
	client, _ := newTestClient(t, fake, "key123")

	event, err := client.EventByID(context.Background(), "e2")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "e2", *event.ID)
	assert.Equal(t, "Event e2", *event.Name)
}

func TestEventByID_NotFound(t *testing.T) {
	fake := server.NewFakeDiscoveryServer(20)
	client, _ := newTestClient(t, fake, "key123")

	_, err := client.EventByID(context.Background(), "missing")

	var apiErr *api.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected an ApiError, got %v", err)
	}
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, api.KindValidation, apiErr.Kind)
	assert.Equal(t, "DIS1004", apiErr.Errors[0].Code)
}

func TestVenuesByName(t *testing.T) {
	fake := server.NewFakeDiscoveryServer(20)
	venues := []models.Venue{
		{ID: strPtr("KovZpaFEZe"), Name: strPtr("The Tabernacle")},
	}
	if err := fake.LoadVenues(venues); err != nil {
		t.Fatalf("Failed to load fixture venues: %v", err)
	}
	client, _ := newTestClient(t, fake, "key123")

	resp, err := client.VenuesByName(context.Background(), "Tabernacle", "GA")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	page := resp.FirstPage()
	assert.Equal(t, models.KindVenues, page.EntityKind)
	assert.Equal(t, 1, page.Len())
	assert.Equal(t, "The Tabernacle", *page.Venues[0].Name)
}

func TestClassificationLookups(t *testing.T) {
	// The API answers a classification lookup for any tree node with
	// the whole tree; segment/genre/subgenre lookups walk it.
	segmentID := "KZFzniwnSyZfZ7v7nJ"
	genreID := "KnvZfZ7vAvE"
	subgenreID := "KZazBEonSMnZfZ7vkdl"

	tree := &models.Segment{
		ID:   strPtr(segmentID),
		Name: strPtr("Music"),
		Genres: []models.Genre{
			{
				ID:   strPtr(genreID),
				Name: strPtr("Jazz"),
				Subgenres: []models.Subgenre{
					{ID: strPtr(subgenreID), Name: strPtr("Bebop")},
				},
			},
		},
	}
	// The fake indexes by top-level id; the same tree is served under
	// each node ID, matching the real API's behavior.
	classifications := []models.Classification{
		{ID: strPtr(segmentID), Segment: tree},
		{ID: strPtr(genreID), Segment: tree},
		{ID: strPtr(subgenreID), Segment: tree},
	}
	fake := server.NewFakeDiscoveryServer(20)
	if err := fake.LoadClassifications(classifications); err != nil {
		t.Fatalf("Failed to load fixture classifications: %v", err)
	}

	client, _ := newTestClient(t, fake, "key123")
	ctx := context.Background()

	segment, err := client.SegmentByID(ctx, segmentID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "Music", *segment.Name)

	genre, err := client.GenreByID(ctx, genreID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "Jazz", *genre.Name)

	subgenre, err := client.SubgenreByID(ctx, subgenreID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, "Bebop", *subgenre.Name)
}

func TestSearchEvents_ApiKeyNeverLogged(t *testing.T) {
	params := map[string][]string{"apikey": {"secret"}, "keyword": {"jazz"}}
	out := redacted(params)

	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "keyword=jazz")
}
