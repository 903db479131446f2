package service

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// радиус круга вокруг точки, в градусах
	pointBufferDegrees = 0.01
	bufferSegments     = 32
)

type locationResolver struct {
	table    *models.LocationTable
	geocoder Geocoder
	logger   *logrus.Logger
}

func NewLocationResolver(table *models.LocationTable, geocoder Geocoder, logger *logrus.Logger) LocationResolver {
	return &locationResolver{
		table:    table,
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve возвращает WKT полигона: из статической таблицы или через геокодер.
// Результаты геокодера не кешируются.
func (r *locationResolver) Resolve(ctx context.Context, name string) (string, error) {
	if polygon, ok := r.table.Lookup(name); ok {
		return polygon, nil
	}

	geom, err := r.geocoder.Geocode(ctx, name)
	if err != nil {
		r.logger.WithField("location", name).WithError(err).Error("Geocoding error")
		return "", &models.ResolutionError{
			Location: name,
			Msg:      fmt.Sprintf("Geocoding error for '%s': %v", name, err),
			Err:      err,
		}
	}
	if geom == nil {
		return "", &models.ResolutionError{
			Location: name,
			Msg:      fmt.Sprintf("Location '%s' not found", name),
		}
	}

	return wkt.MarshalString(areaOf(geom)), nil
}

func (r *locationResolver) Names() []string {
	return r.table.Names()
}

// areaOf приводит геометрию к площадной: запрос к хранилищу требует полигон
func areaOf(geom orb.Geometry) orb.Geometry {
	switch g := geom.(type) {
	case orb.Point:
		return BufferPoint(g, pointBufferDegrees, bufferSegments)
	case orb.MultiPoint:
		if len(g) == 1 {
			return BufferPoint(g[0], pointBufferDegrees, bufferSegments)
		}
	case orb.Polygon, orb.MultiPolygon:
		return g
	case orb.Bound:
		return g.ToPolygon()
	}

	bound := geom.Bound()
	if bound.IsEmpty() || bound.Min == bound.Max {
		return BufferPoint(bound.Center(), pointBufferDegrees, bufferSegments)
	}
	return bound.ToPolygon()
}

// BufferPoint строит многоугольник из segments сторон вокруг точки
func BufferPoint(p orb.Point, radius float64, segments int) orb.Polygon {
	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		ring = append(ring, orb.Point{
			p.Lon() + radius*math.Cos(angle),
			p.Lat() + radius*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
