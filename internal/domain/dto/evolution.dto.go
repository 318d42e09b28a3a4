package dto

// RequestOptions describes one call to the Evolution API, relative to its server URL.
type RequestOptions struct {
	Method string
	URI    string
	Body   any
}
