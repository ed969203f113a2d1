package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"soultether/internal/errors"
)

// Nominatim is the open fallback geocoding provider. It requires no key
// but asks for an identifying User-Agent.
type Nominatim struct {
	baseURL string
	client  *http.Client
}

// NewNominatim creates a Nominatim provider.
func NewNominatim(baseURL string, timeout time.Duration) *Nominatim {
	return &Nominatim{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

// Name returns the provider name.
func (n *Nominatim) Name() string { return "nominatim" }

type nominatimEntry struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves a location through the Nominatim search API.
func (n *Nominatim) Lookup(ctx context.Context, location string) (*Result, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.NewGeocodeError(n.Name(), location, err)
	}
	req.Header.Set("User-Agent", "SoulTether")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, errors.NewGeocodeError(n.Name(), location, classifyTransport(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewGeocodeError(n.Name(), location,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var entries []nominatimEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.NewGeocodeError(n.Name(), location, err)
	}
	if len(entries) == 0 {
		return nil, errors.NewGeocodeError(n.Name(), location, errors.ErrLocationNotFound)
	}

	lat, err := strconv.ParseFloat(entries[0].Lat, 64)
	if err != nil {
		return nil, errors.NewGeocodeError(n.Name(), location, err)
	}
	lon, err := strconv.ParseFloat(entries[0].Lon, 64)
	if err != nil {
		return nil, errors.NewGeocodeError(n.Name(), location, err)
	}

	return &Result{Latitude: lat, Longitude: lon}, nil
}
