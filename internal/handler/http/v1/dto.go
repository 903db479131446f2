package v1

import (
	"github.com/paulmach/orb/geojson"
)

// GeoJSONQuery DTO параметров запроса /geojson
type GeoJSONQuery struct {
	Location  string `form:"location" validate:"max=256"`
	Severity  string `form:"severity" validate:"max=64"`
	StartDate string `form:"start_date" validate:"max=32"`
	EndDate   string `form:"end_date" validate:"max=32"`
}

// GeoJSONResponse DTO успешного ответа
// @Description Accidents inside the requested location
type GeoJSONResponse struct {
	GeoJSON   *geojson.FeatureCollection `json:"geojson" swaggertype:"object"`
	Query     string                     `json:"query"`
	QueryTime float64                    `json:"query_time"`
	// число строк или "N/A"
	DataScanned   any `json:"data_scanned" swaggertype:"string"`
	AccidentCount int `json:"accident_count"`
}

// ErrorResponse DTO ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// IndexPageData - данные для шаблона главной страницы
type IndexPageData struct {
	Locations       []string
	MapboxToken     string
	DefaultLocation string
}
