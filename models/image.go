package models

// Image is an image attached to an event, venue or attraction.
// Every field is optional on the wire.
type Image struct {
	URL         *string `json:"url"`
	Ratio       *string `json:"ratio"`
	Width       *int    `json:"width"`
	Height      *int    `json:"height"`
	Fallback    *bool   `json:"fallback"`
	Attribution *string `json:"attribution"`
}
