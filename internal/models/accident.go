package models

import (
	"database/sql"
	"time"

	"github.com/paulmach/orb/geojson"
)

// Filter - параметры поиска аварий, пришедшие из запроса
type Filter struct {
	Location  string
	Severity  string
	StartDate string
	EndDate   string
}

// Query - сгенерированный SQL запрос к хранилищу
type Query struct {
	SQL  string
	Args []any
	// Text - тот же запрос с подставленными значениями, только для ответа и логов
	Text string
}

// IncidentRecord - строка таблицы accidentdata. Любая колонка может прийти NULL.
type IncidentRecord struct {
	ID               sql.NullString  `db:"id"`
	Severity         sql.NullString  `db:"severity"`
	StartTime        sql.NullTime    `db:"start_time"`
	Description      sql.NullString  `db:"description"`
	WeatherCondition sql.NullString  `db:"weather_condition"`
	DistanceMi       sql.NullFloat64 `db:"distance_mi"`
	LocationWKT      sql.NullString  `db:"location_wkt"`
}

// QueryResult - результат выполнения запроса в хранилище
type QueryResult struct {
	Records []IncidentRecord
	Elapsed time.Duration
	// ScannedRows равен nil, если драйвер не вернул количество строк
	ScannedRows *int64
}

// AccidentReport - итог успешного поиска
type AccidentReport struct {
	Features      *geojson.FeatureCollection
	Query         string
	QueryTime     time.Duration
	ScannedRows   *int64
	AccidentCount int
}
