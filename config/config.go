package config

import (
	"os"
	"path/filepath"
)

// Ticketmaster Discovery API
const DISCOVERY_ROOT_URL = "https://app.ticketmaster.com"
const DISCOVERY_API_VERSION = "v2"
const DISCOVERY_ENDPOINT_BASE_V2 = DISCOVERY_ROOT_URL + "/discovery/" + DISCOVERY_API_VERSION

// API key is read from the environment, never stored in the repo
const API_KEY_ENV_VAR = "TICKETMASTER_API_KEY"

// The API refuses to page past the 1000th item (page * size must stay below this)
const MAX_PAGE_DEPTH = 1000

// Default number of page requests made by Limit() when callers pass no bound
const DEFAULT_PAGE_LIMIT = 5

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const EVENT_SEARCH_RESOURCE = "event_search_response.json"
const VENUE_SEARCH_RESOURCE = "venue_search_response.json"
const ATTRACTION_SEARCH_RESOURCE = "attraction_search_response.json"
const CLASSIFICATION_SEARCH_RESOURCE = "classification_search_response.json"
const EVENT_STATIC_RESOURCE = "event_static.json"
const VENUE_STATIC_RESOURCE = "venue_static.json"

// APIKey returns the Discovery API key from the environment, or ""
// when none is configured (callers fall back to the mock client).
func APIKey() string {
	return os.Getenv(API_KEY_ENV_VAR)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
