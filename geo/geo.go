// Package geo covers the location collaborators: the host geolocation
// capability and the Nominatim places search.
package geo

import (
	"context"
	"errors"
)

// ErrUnavailable is reported by a Locator that cannot produce a position at
// all, for example when the browser lacks the Geolocation API.
var ErrUnavailable = errors.New("geo: geolocation unavailable")

type Position struct {
	Lat float64
	Lng float64
}

// Locator answers "where is the user right now".
type Locator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (Position, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context) (Position, error) {
	return f(ctx)
}

// Fixed always reports the same position.
type Fixed Position

func (f Fixed) CurrentPosition(context.Context) (Position, error) {
	return Position(f), nil
}

// Unavailable always fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) CurrentPosition(context.Context) (Position, error) {
	return Position{}, ErrUnavailable
}
