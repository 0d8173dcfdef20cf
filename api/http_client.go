package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second, // Set a timeout for requests
		},
	}
}

// Get performs a GET against BaseURL+endpoint with the given query
// parameters and returns the status code plus the raw body. The body is
// returned even for non-2xx responses: the Discovery API encodes the
// error class in the body, so callers classify it themselves.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, params url.Values) (int, []byte, error) {
	return c.GetURL(ctx, c.BaseURL+endpoint, params)
}

// GetURL is Get for an absolute URL, used when following "_links" hrefs
// that already carry a full path.
func (c *HTTPClient) GetURL(ctx context.Context, rawURL string, params url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}

	// Merge params with whatever the URL already carries
	q := req.URL.Query()
	for key, values := range params {
		for _, value := range values {
			q.Set(key, value)
		}
	}
	req.URL.RawQuery = q.Encode()

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}

	return res.StatusCode, body, nil
}
