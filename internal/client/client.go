// Package client es un cliente tipado de la API HTTP de bird-sightings.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"
)

type Client struct {
	http    *http.Client
	baseURL string
}

// New valida baseURL ("http://host:port", sin path final).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient permite inyectar el *http.Client (p.ej. el de httptest.Server).
func NewWithHTTPClient(baseURL string, hc *http.Client) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if hc == nil {
		hc = &http.Client{}
	}
	if hc.Timeout <= 0 {
		hc.Timeout = DefaultTimeout
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// -------------------------
// Birds
// -------------------------

func (c *Client) AddBird(ctx context.Context, b birds.BirdPayload) (birds.BirdPayload, error) {
	var out birds.BirdPayload
	_, err := c.doJSON(ctx, http.MethodPost, "/api/bird", b, &out)
	return out, err
}

func (c *Client) ListBirds(ctx context.Context) ([]birds.BirdPayload, error) {
	var out []birds.BirdPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/bird", nil, &out)
	return out, err
}

func (c *Client) GetBirdByName(ctx context.Context, name string) (birds.BirdPayload, error) {
	var out birds.BirdPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/bird/name/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c *Client) GetBirdsByColor(ctx context.Context, color string) ([]birds.BirdPayload, error) {
	var out []birds.BirdPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/bird/color/"+url.PathEscape(color), nil, &out)
	return out, err
}

func (c *Client) DeleteBird(ctx context.Context, name string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/bird/"+url.PathEscape(name), nil, nil)
	return err
}

// -------------------------
// Sightings
// -------------------------

// AddSighting devuelve el sighting creado (status 201).
func (c *Client) AddSighting(ctx context.Context, s sightings.SightingPayload) (sightings.SightingPayload, error) {
	var out sightings.SightingPayload
	status, err := c.doJSON(ctx, http.MethodPost, "/api/sighting", s, &out)
	if err != nil {
		return out, err
	}
	if status != http.StatusCreated {
		return out, fmt.Errorf("client: add sighting: unexpected status %d", status)
	}
	return out, nil
}

func (c *Client) ListSightings(ctx context.Context) ([]sightings.SightingPayload, error) {
	var out []sightings.SightingPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/sighting", nil, &out)
	return out, err
}

func (c *Client) GetSightingsByBird(ctx context.Context, b birds.BirdPayload) ([]sightings.SightingPayload, error) {
	var out []sightings.SightingPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/sighting/bird", b, &out)
	return out, err
}

func (c *Client) GetSightingsByLocation(ctx context.Context, location string) ([]sightings.SightingPayload, error) {
	var out []sightings.SightingPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/sighting/location/"+url.PathEscape(location), nil, &out)
	return out, err
}

// GetSightingsByDateRange recibe fechas YYYY-MM-DD; el server valida el formato.
func (c *Client) GetSightingsByDateRange(ctx context.Context, start, end string) ([]sightings.SightingPayload, error) {
	q := url.Values{}
	q.Set("startDate", start)
	q.Set("endDate", end)

	var out []sightings.SightingPayload
	_, err := c.doJSON(ctx, http.MethodGet, "/api/sighting/date-range?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) DeleteSighting(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/sighting/"+url.PathEscape(id), nil, nil)
	return err
}
