package service

import (
	"database/sql"
	"errors"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/sirupsen/logrus"
)

var errNullGeometry = errors.New("geometry is NULL")

// BuildFeatureCollection превращает строки в GeoJSON. Строки с нечитаемой или пустой (NULL)
// геометрией пропускаются, второе значение - их количество.
func BuildFeatureCollection(records []models.IncidentRecord, log logrus.FieldLogger) (*geojson.FeatureCollection, int) {
	fc := geojson.NewFeatureCollection()
	skipped := 0

	for _, rec := range records {
		if !rec.LocationWKT.Valid {
			log.WithError(errNullGeometry).WithField("id", nullString(rec.ID)).Error("Error parsing WKT: NULL")
			skipped++
			continue
		}
		geom, err := wkt.Unmarshal(rec.LocationWKT.String)
		if err != nil {
			log.WithError(err).Errorf("Error parsing WKT: %s", rec.LocationWKT.String)
			skipped++
			continue
		}

		f := geojson.NewFeature(geom)
		f.Properties["id"] = nullString(rec.ID)
		f.Properties["severity"] = nullString(rec.Severity)
		if rec.StartTime.Valid {
			f.Properties["start_time"] = rec.StartTime.Time
		} else {
			f.Properties["start_time"] = nil
		}
		f.Properties["description"] = nullString(rec.Description)
		f.Properties["weather_condition"] = nullString(rec.WeatherCondition)
		if rec.DistanceMi.Valid {
			f.Properties["distance_mi"] = rec.DistanceMi.Float64
		} else {
			f.Properties["distance_mi"] = nil
		}
		fc.Append(f)
	}

	return fc, skipped
}

func nullString(s sql.NullString) any {
	if !s.Valid {
		return nil
	}
	return s.String
}
