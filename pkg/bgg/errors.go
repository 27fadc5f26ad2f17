package bgg

import (
	"errors"
	"fmt"
)

// ErrNoNameFound indicates a catalog item carried no usable name at all.
// Items without a name are rejected outright and never persisted.
var ErrNoNameFound = errors.New("catalog item has no usable name")

// FetchKind classifies terminal fetch failures.
type FetchKind string

const (
	// FetchTimeout is a request-level timeout. Never retried.
	FetchTimeout FetchKind = "timeout"
	// FetchTransport is any non-success, non-processing transport status
	// or connection failure. Never retried.
	FetchTransport FetchKind = "transport"
	// FetchExhausted means the catalog kept answering "still processing"
	// for every allowed attempt.
	FetchExhausted FetchKind = "exhausted"
	// FetchMalformedPayload is a parse failure on the response body. The
	// payload is discarded.
	FetchMalformedPayload FetchKind = "malformed_payload"
)

// FetchError is a terminal failure from the catalog API.
type FetchError struct {
	Kind       FetchKind
	GameID     string
	StatusCode int
	Attempts   int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("catalog fetch failed (%s)", e.Kind)
	if e.GameID != "" {
		msg += fmt.Sprintf(" for game %s", e.GameID)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Attempts > 0 {
		msg += fmt.Sprintf(" after %d attempts", e.Attempts)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchKind reports whether err is a FetchError of the given kind.
func IsFetchKind(err error, kind FetchKind) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
