// Package geocode resolves free-text locations to coordinates.
package geocode

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"soultether/internal/errors"
)

// Result is a resolved coordinate pair.
type Result struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a free-text location string to coordinates.
type Geocoder interface {
	Name() string
	Lookup(ctx context.Context, location string) (*Result, error)
}

// Chain tries providers in order and returns the first success. This is a
// provider fallback, not a retry: each provider is asked exactly once.
type Chain struct {
	providers []Geocoder
	logger    zerolog.Logger
}

// NewChain creates a provider chain.
func NewChain(logger zerolog.Logger, providers ...Geocoder) *Chain {
	return &Chain{providers: providers, logger: logger}
}

// Lookup resolves a location through the provider chain.
func (c *Chain) Lookup(ctx context.Context, location string) (*Result, error) {
	if location == "" {
		return nil, errors.NewGeocodeError("chain", location, errors.ErrLocationNotFound)
	}

	var lastErr error
	for _, p := range c.providers {
		start := time.Now()
		res, err := p.Lookup(ctx, location)
		if err == nil {
			c.logger.Debug().
				Str("provider", p.Name()).
				Str("location", location).
				Float64("lat", res.Latitude).
				Float64("lon", res.Longitude).
				Dur("duration", time.Since(start)).
				Msg("Location resolved")
			return res, nil
		}
		c.logger.Warn().Err(err).Str("provider", p.Name()).Msg("Geocoding provider failed")
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.ErrLocationNotFound
	}
	return nil, lastErr
}

// newHTTPClient builds the shared provider client with a hard timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// classifyTransport maps transport failures onto the error taxonomy so
// timeouts surface as a distinct reason string.
func classifyTransport(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return errors.Wrap(errors.ErrGeocodeTimeout, err.Error())
	}
	return err
}
