package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/accident_map/internal/config"
	"github.com/shenikar/accident_map/internal/observability"
	"github.com/sirupsen/logrus"
)

// Client - геокодер на базе Nominatim search API. Возвращает границу места,
// а если границы нет - его центр точкой.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

// NewClient создает клиент Nominatim
func NewClient(cfg *config.Config, clock clockwork.Clock, logger *logrus.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.GeocoderURL, "/"),
		userAgent: cfg.GeocoderUserAgent,
		httpClient: &http.Client{
			Timeout: cfg.GeocoderTimeout,
		},
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// Geocode ищет место по названию. Если ничего не найдено, возвращает nil без ошибки.
func (c *Client) Geocode(ctx context.Context, query string) (orb.Geometry, error) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "geocoder",
		"query":     query,
	})

	geom, err := c.search(ctx, query, log)
	switch {
	case err != nil:
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		log.WithError(err).Warn("Geocoding request failed")
		return nil, err
	case geom == nil:
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		log.Info("Geocoding returned no results")
		return nil, nil
	}

	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	log.WithField("geometry_type", geom.GeoJSONType()).Debug("Location geocoded")
	return geom, nil
}

func (c *Client) search(ctx context.Context, query string, log *logrus.Entry) (orb.Geometry, error) {
	params := url.Values{
		"q":               {query},
		"format":          {"jsonv2"},
		"limit":           {"1"},
		"polygon_geojson": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	log.WithField("elapsed", c.clock.Since(start)).Debug("Nominatim responded")

	if len(places) == 0 {
		return nil, nil
	}
	return places[0].geometry()
}

// Nominatim API response types.

type place struct {
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	DisplayName string          `json:"display_name"`
	GeoJSON     json.RawMessage `json:"geojson"`
}

func (p place) geometry() (orb.Geometry, error) {
	if len(p.GeoJSON) > 0 && string(p.GeoJSON) != "null" {
		g, err := geojson.UnmarshalGeometry(p.GeoJSON)
		if err != nil {
			return nil, fmt.Errorf("decode geometry of %q: %w", p.DisplayName, err)
		}
		return g.Geometry(), nil
	}

	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lon %q: %w", p.Lon, err)
	}
	return orb.Point{lon, lat}, nil
}
