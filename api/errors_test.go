package api

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApiError_FaultBodyIsAuth(t *testing.T) {
	// Arrange
	body := []byte(`{
		"fault": {
			"faultstring": "Invalid ApiKey",
			"detail": {"errorcode": "oauth.v2.InvalidApiKey"}
		}
	}`)

	// Act
	apiErr := NewApiError(401, "https://app.ticketmaster.com/discovery/v2/events.json", nil, body)

	// Assert
	assert.Equal(t, KindAuth, apiErr.Kind)
	if apiErr.Fault == nil {
		t.Fatalf("Expected the fault body to be carried")
	}
	assert.Equal(t, "Invalid ApiKey", apiErr.Fault.FaultString)
	assert.Contains(t, apiErr.Error(), "Invalid ApiKey")
}

func TestNewApiError_ErrorsBodyIsValidation(t *testing.T) {
	body := []byte(`{
		"errors": [{
			"code": "DIS1035",
			"detail": "Query param page must be a whole non-negative number",
			"status": "400",
			"_links": {"about": {"href": "/discovery/v2/errors.html#DIS1035"}}
		}]
	}`)

	apiErr := NewApiError(400, "https://app.ticketmaster.com/discovery/v2/events.json", nil, body)

	assert.Equal(t, KindValidation, apiErr.Kind)
	if len(apiErr.Errors) != 1 {
		t.Fatalf("Expected 1 error detail, got %d", len(apiErr.Errors))
	}
	assert.Equal(t, "DIS1035", apiErr.Errors[0].Code)
	assert.Equal(t, "/discovery/v2/errors.html#DIS1035", apiErr.Errors[0].Links.About.Href)
	assert.Contains(t, apiErr.Error(), "DIS1035")
}

func TestNewApiError_UnrecognizedBodyIsUnknown(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"HTML Body", "<html>502 Bad Gateway</html>"},
		{"Empty Body", ""},
		{"Unrelated JSON", `{"message": "boom"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			apiErr := NewApiError(502, "https://app.ticketmaster.com", nil, []byte(test.body))

			assert.Equal(t, KindUnknown, apiErr.Kind)
			assert.Equal(t, test.body, apiErr.RawBody)
		})
	}
}

func TestNewApiError_RedactsApiKey(t *testing.T) {
	params := url.Values{}
	params.Set("apikey", "super-secret")
	params.Set("keyword", "jazz")

	apiErr := NewApiError(400, "https://app.ticketmaster.com/discovery/v2/events.json", params, []byte(`{"errors": [{"code": "DIS1035"}]}`))

	if apiErr.Params.Get("apikey") != "" {
		t.Errorf("Expected apikey to be redacted from params")
	}
	assert.Equal(t, "jazz", apiErr.Params.Get("keyword"))
	if strings.Contains(apiErr.Error(), "super-secret") {
		t.Errorf("Expected the key to never appear in the error string")
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
