package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/planar"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/shenikar/accident_map/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestResolver - вспомогательная функция для создания резолвера с мок-геокодером
func newTestResolver(t *testing.T) (LocationResolver, *mocks.MockGeocoder) {
	ctrl := gomock.NewController(t)
	geocoder := mocks.NewMockGeocoder(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	table := models.NewLocationTable([]models.Location{{Name: "Long Beach", WKT: longBeachWKT}})
	return NewLocationResolver(table, geocoder, logger), geocoder
}

func TestResolve_StaticLocation(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	polygon, err := resolver.Resolve(context.Background(), "Long Beach")
	require.NoError(t, err)
	assert.Equal(t, longBeachWKT, polygon)
	assert.Equal(t, []string{"Long Beach"}, resolver.Names())
}

func TestResolve_GeocodedPointBecomesArea(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	geocoder.EXPECT().Geocode(gomock.Any(), "Austin").Return(orb.Point{-97.7431, 30.2672}, nil).Times(1)

	polygon, err := resolver.Resolve(context.Background(), "Austin")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(polygon, "POLYGON"), polygon)

	geom, err := wkt.Unmarshal(polygon)
	require.NoError(t, err)
	poly, ok := geom.(orb.Polygon)
	require.True(t, ok)
	assert.Greater(t, planar.Area(poly), 0.0)
	assert.True(t, planar.PolygonContains(poly, orb.Point{-97.7431, 30.2672}))
}

func TestResolve_GeocodedPolygonUnchanged(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	poly := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	geocoder.EXPECT().Geocode(gomock.Any(), "Square").Return(poly, nil)

	polygon, err := resolver.Resolve(context.Background(), "Square")
	require.NoError(t, err)
	assert.Equal(t, wkt.MarshalString(poly), polygon)
}

func TestResolve_GeocodedLineUsesBound(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	line := orb.LineString{{0, 0}, {2, 1}}
	geocoder.EXPECT().Geocode(gomock.Any(), "Road").Return(line, nil)

	polygon, err := resolver.Resolve(context.Background(), "Road")
	require.NoError(t, err)
	assert.Equal(t, wkt.MarshalString(line.Bound().ToPolygon()), polygon)
}

func TestResolve_GeocodingError(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	cause := errors.New("connection refused")
	geocoder.EXPECT().Geocode(gomock.Any(), "Nowhere123").Return(nil, cause)

	_, err := resolver.Resolve(context.Background(), "Nowhere123")
	require.Error(t, err)

	var resErr *models.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "Nowhere123", resErr.Location)
	assert.Contains(t, err.Error(), "Nowhere123")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestResolve_NotFound(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	geocoder.EXPECT().Geocode(gomock.Any(), "Atlantis").Return(nil, nil)

	_, err := resolver.Resolve(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.EqualError(t, err, "Location 'Atlantis' not found")
}

func TestResolve_NotCached(t *testing.T) {
	resolver, geocoder := newTestResolver(t)
	geocoder.EXPECT().Geocode(gomock.Any(), "Austin").Return(orb.Point{-97.7431, 30.2672}, nil).Times(2)

	_, err := resolver.Resolve(context.Background(), "Austin")
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), "Austin")
	require.NoError(t, err)
}

func TestBufferPoint(t *testing.T) {
	center := orb.Point{10, 20}
	poly := BufferPoint(center, 0.01, 16)

	require.Len(t, poly, 1)
	ring := poly[0]
	assert.Len(t, ring, 17)
	assert.True(t, ring.Closed())
	assert.Equal(t, orb.CCW, ring.Orientation())
	for _, p := range ring {
		assert.InDelta(t, 0.01, planar.Distance(center, p), 1e-9)
	}
}
