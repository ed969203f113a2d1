package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"soultether/internal/errors"
)

// Geoapify is the keyed primary geocoding provider.
type Geoapify struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGeoapify creates a Geoapify provider.
func NewGeoapify(apiKey, baseURL string, timeout time.Duration) *Geoapify {
	return &Geoapify{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// Name returns the provider name.
func (g *Geoapify) Name() string { return "geoapify" }

type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"properties"`
	} `json:"features"`
}

// Lookup resolves a location through the Geoapify search API.
func (g *Geoapify) Lookup(ctx context.Context, location string) (*Result, error) {
	if g.apiKey == "" {
		return nil, errors.NewGeocodeError(g.Name(), location, fmt.Errorf("no API key configured"))
	}

	q := url.Values{}
	q.Set("text", location)
	q.Set("apiKey", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.NewGeocodeError(g.Name(), location, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewGeocodeError(g.Name(), location, classifyTransport(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewGeocodeError(g.Name(), location,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body geoapifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.NewGeocodeError(g.Name(), location, err)
	}
	if len(body.Features) == 0 {
		return nil, errors.NewGeocodeError(g.Name(), location, errors.ErrLocationNotFound)
	}

	return &Result{
		Latitude:  body.Features[0].Properties.Lat,
		Longitude: body.Features[0].Properties.Lon,
	}, nil
}
