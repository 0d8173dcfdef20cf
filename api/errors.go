package api

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ErrorKind classifies an ApiError by the shape of the response body.
type ErrorKind int

const (
	// KindValidation covers "errors" bodies: bad request parameters,
	// correctable by the caller.
	KindValidation ErrorKind = iota
	// KindAuth covers "fault" bodies: invalid API key or quota
	// violations. Retrying the same call will not help.
	KindAuth
	// KindUnknown covers everything else; RawBody holds the response.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// ErrorDetail is one entry of an "errors" response body.
type ErrorDetail struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status string `json:"status"`
	Links  struct {
		About struct {
			Href string `json:"href"`
		} `json:"about"`
	} `json:"_links"`
}

// Fault is the "fault" response body returned for authentication-class
// failures (HTTP 401).
type Fault struct {
	FaultString string      `json:"faultstring"`
	Detail      interface{} `json:"detail"`
}

// ApiError is returned whenever the Discovery API answers with a
// non-success status. The request parameters are kept for diagnostics
// with the apikey redacted.
type ApiError struct {
	StatusCode int
	URL        string
	Params     url.Values
	Kind       ErrorKind
	Errors     []ErrorDetail
	Fault      *Fault
	RawBody    string
}

// NewApiError classifies a non-success response by its body shape:
// {"errors": [...]} is a validation failure, {"fault": {...}} is an
// authentication failure, anything else is surfaced raw.
func NewApiError(statusCode int, requestURL string, params url.Values, body []byte) *ApiError {
	apiErr := &ApiError{
		StatusCode: statusCode,
		URL:        requestURL,
		Params:     redact(params),
	}

	var shape struct {
		Errors []ErrorDetail `json:"errors"`
		Fault  *Fault        `json:"fault"`
	}
	if err := json.Unmarshal(body, &shape); err == nil {
		if shape.Fault != nil {
			apiErr.Kind = KindAuth
			apiErr.Fault = shape.Fault
			return apiErr
		}
		if len(shape.Errors) > 0 {
			apiErr.Kind = KindValidation
			apiErr.Errors = shape.Errors
			return apiErr
		}
	}

	apiErr.Kind = KindUnknown
	apiErr.RawBody = string(body)
	return apiErr
}

func (e *ApiError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "discovery API error (%s, status %d) for %s", e.Kind, e.StatusCode, e.URL)
	if len(e.Params) > 0 {
		fmt.Fprintf(&sb, " params=%s", e.Params.Encode())
	}
	switch e.Kind {
	case KindAuth:
		fmt.Fprintf(&sb, ": %s", e.Fault.FaultString)
	case KindValidation:
		for _, detail := range e.Errors {
			fmt.Fprintf(&sb, "\n  %s: %s (%s)", detail.Code, detail.Detail, detail.Links.About.Href)
		}
	default:
		fmt.Fprintf(&sb, ": %s", e.RawBody)
	}
	return sb.String()
}

// redact copies params without credential values.
func redact(params url.Values) url.Values {
	if params == nil {
		return nil
	}
	clean := url.Values{}
	for key, values := range params {
		if key == "apikey" {
			continue
		}
		clean[key] = append([]string(nil), values...)
	}
	return clean
}
