package models

// Issue is what the tracker returns once a report is published. Lifecycle
// past creation (comments, closure) stays with the platform.
type Issue struct {
	Number int
	Title  string
	Body   string
	State  string
	Labels []string
	URL    string
}
