package feed

import "fmt"

// LoadError reports that a feed could not be retrieved or parsed.
type LoadError struct {
	Feed       string
	StatusCode int // non-zero when the server answered with a non-success status
	Err        error
}

func (e *LoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("loading %s: status %d: %v", e.Feed, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.Feed, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFoundError reports that a loaded feed has no record with the requested key.
type NotFoundError struct {
	Feed  string
	Field string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no record with %s %q", e.Feed, e.Field, e.Value)
}

type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return "unexpected response " + e.status
}
