package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"tm-discovery/models"
)

const PAGE_QUERY_ARG = "page"
const SIZE_QUERY_ARG = "size"
const APIKEY_QUERY_ARG = "apikey"

// The ceiling the real API enforces on page * size.
const FAKE_MAX_PAGE_DEPTH = 1000

// FakeDiscoveryServer imitates the Discovery API's paginated search
// endpoints from in-memory datasets. Tests and the offline demo mount
// its router in an httptest.Server and point the real client at it.
// Like the real API it appends a templated "{&sort}" fragment to next
// links and answers missing keys with a fault body.
type FakeDiscoveryServer struct {
	router   *mux.Router
	pageSize int

	// datasets and byID are keyed by search method (events, venues...)
	datasets map[string][]json.RawMessage
	byID     map[string]map[string]json.RawMessage
}

// NewFakeDiscoveryServer creates a fake server slicing its datasets
// into pages of pageSize.
func NewFakeDiscoveryServer(pageSize int) *FakeDiscoveryServer {
	s := &FakeDiscoveryServer{
		router:   mux.NewRouter(),
		pageSize: pageSize,
		datasets: map[string][]json.RawMessage{},
		byID:     map[string]map[string]json.RawMessage{},
	}
	s.registerRoutes()
	return s
}

func (s *FakeDiscoveryServer) registerRoutes() {
	// expects ?apikey={key}&page={page(int)}&size={size(int)}
	s.router.HandleFunc("/discovery/v2/{method:[a-z]+}.json", s.handleSearch).Methods("GET")
	s.router.HandleFunc("/discovery/v2/{method:[a-z]+}/{id}", s.handleByID).Methods("GET")
}

// Router exposes the mux router for mounting in an httptest.Server.
func (s *FakeDiscoveryServer) Router() *mux.Router {
	return s.router
}

func (s *FakeDiscoveryServer) LoadEvents(events []models.Event) error {
	items := make([]interface{}, len(events))
	for i := range events {
		items[i] = &events[i]
	}
	return s.load("events", items)
}

func (s *FakeDiscoveryServer) LoadVenues(venues []models.Venue) error {
	items := make([]interface{}, len(venues))
	for i := range venues {
		items[i] = &venues[i]
	}
	return s.load("venues", items)
}

func (s *FakeDiscoveryServer) LoadAttractions(attractions []models.Attraction) error {
	items := make([]interface{}, len(attractions))
	for i := range attractions {
		items[i] = &attractions[i]
	}
	return s.load("attractions", items)
}

func (s *FakeDiscoveryServer) LoadClassifications(classifications []models.Classification) error {
	items := make([]interface{}, len(classifications))
	for i := range classifications {
		items[i] = &classifications[i]
	}
	return s.load("classifications", items)
}

func (s *FakeDiscoveryServer) load(method string, items []interface{}) error {
	s.datasets[method] = nil
	s.byID[method] = map[string]json.RawMessage{}
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshaling %s fixture: %w", method, err)
		}
		s.datasets[method] = append(s.datasets[method], data)

		var id struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &id); err == nil && id.ID != "" {
			s.byID[method][id.ID] = data
		}
	}
	return nil
}

func (s *FakeDiscoveryServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	method := mux.Vars(r)["method"]
	vals := r.URL.Query()

	if !s.checkKey(vals, w) {
		return
	}

	page, size, ok := s.parsePaging(vals, w)
	if !ok {
		return
	}

	dataset := s.datasets[method]
	totalElements := len(dataset)
	totalPages := 0
	if size > 0 {
		totalPages = (totalElements + size - 1) / size
	}

	start := page * size
	end := start + size
	if start > totalElements {
		start = totalElements
	}
	if end > totalElements {
		end = totalElements
	}
	items := dataset[start:end]

	links := map[string]interface{}{
		"self": map[string]string{
			"href": fmt.Sprintf("/discovery/v2/%s.json?page=%d&size=%d", method, page, size),
		},
	}
	if page+1 < totalPages && (page+1)*size < FAKE_MAX_PAGE_DEPTH {
		// Real responses carry a templated fragment on next hrefs
		links["next"] = map[string]string{
			"href": fmt.Sprintf("/discovery/v2/%s.json?page=%d&size=%d{&sort}", method, page+1, size),
		}
	}

	body := map[string]interface{}{
		"page": map[string]int{
			"number":        page,
			"size":          size,
			"totalElements": totalElements,
			"totalPages":    totalPages,
		},
		"_links": links,
	}
	if len(items) > 0 {
		body["_embedded"] = map[string]interface{}{method: items}
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *FakeDiscoveryServer) handleByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !s.checkKey(r.URL.Query(), w) {
		return
	}

	item, ok := s.byID[vars["method"]][vars["id"]]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"errors": []map[string]interface{}{
				{
					"code":   "DIS1004",
					"detail": fmt.Sprintf("Resource not found with provided criteria (id=%s)", vars["id"]),
					"status": "404",
					"_links": map[string]interface{}{
						"about": map[string]string{"href": "/discovery/v2/errors.html#DIS1004"},
					},
				},
			},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(item); err != nil {
		log.Println("Error writing response:", err)
	}
}

// checkKey enforces the apikey parameter, answering with the same
// fault body the real API uses for invalid keys.
func (s *FakeDiscoveryServer) checkKey(vals url.Values, w http.ResponseWriter) bool {
	if vals.Get(APIKEY_QUERY_ARG) != "" {
		return true
	}
	writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
		"fault": map[string]interface{}{
			"faultstring": "Invalid ApiKey",
			"detail": map[string]string{
				"errorcode": "oauth.v2.InvalidApiKey",
			},
		},
	})
	return false
}

func (s *FakeDiscoveryServer) parsePaging(vals url.Values, w http.ResponseWriter) (page, size int, ok bool) {
	page = 0
	if v := vals.Get(PAGE_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"errors": []map[string]interface{}{
					{
						"code":   "DIS1035",
						"detail": "Query param page must be a whole non-negative number",
						"status": "400",
						"_links": map[string]interface{}{
							"about": map[string]string{"href": "/discovery/v2/errors.html#DIS1035"},
						},
					},
				},
			})
			return 0, 0, false
		}
		page = parsed
	}

	size = s.pageSize
	if v := vals.Get(SIZE_QUERY_ARG); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return page, size, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
