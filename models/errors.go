package models

import "fmt"

// MalformedResponseError reports a response body that claimed success
// but is missing a required structural field (or is not JSON at all).
// Missing optional leaf fields never raise this.
type MalformedResponseError struct {
	Missing string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Missing, e.Err)
	}
	return fmt.Sprintf("malformed response: missing %s", e.Missing)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
