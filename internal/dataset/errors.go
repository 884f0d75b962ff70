package dataset

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat marks a body that does not decode to a sequence of team records.
var ErrInvalidFormat = errors.New("dataset is not a sequence of team records")

// Kind classifies a load failure.
type Kind string

const (
	KindHTTPStatus Kind = "http_status"
	KindParse      Kind = "parse_failure"
	KindTransport  Kind = "transport"
)

// LoadError describes why the dataset could not be loaded.
type LoadError struct {
	Kind     Kind
	Resource string
	Status   int
	Err      error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Kind == KindHTTPStatus && e.Err != nil:
		return fmt.Sprintf("load %s: http status %d: %v", e.Resource, e.Status, e.Err)
	case e.Kind == KindHTTPStatus:
		return fmt.Sprintf("load %s: http status %d", e.Resource, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("load %s: %s: %v", e.Resource, e.Kind, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Resource, e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

// AsLoadError attempts to unwrap an error into a LoadError.
func AsLoadError(err error) (*LoadError, bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr, true
	}
	return nil, false
}

func statusErr(resource string, status int, detail string) error {
	var err error
	if detail != "" {
		err = errors.New(detail)
	}
	return &LoadError{Kind: KindHTTPStatus, Resource: resource, Status: status, Err: err}
}

func transportErr(resource string, err error) error {
	return &LoadError{Kind: KindTransport, Resource: resource, Err: err}
}

func parseErr(resource string, err error) error {
	return &LoadError{Kind: KindParse, Resource: resource, Err: err}
}
