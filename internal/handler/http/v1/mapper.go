package v1

import (
	"math"
	"net/http"

	"github.com/shenikar/accident_map/internal/models"
)

const (
	noDataMessage       = "No data found"
	dataScannedNotAvail = "N/A"
)

// QueryToFilter преобразует DTO запроса в фильтр доменной модели
func QueryToFilter(q GeoJSONQuery) models.Filter {
	return models.Filter{
		Location:  q.Location,
		Severity:  q.Severity,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	}
}

// StatusForOutcome возвращает HTTP статус для результата поиска
func StatusForOutcome(kind models.OutcomeKind) int {
	switch kind {
	case models.OutcomeFound:
		return http.StatusOK
	case models.OutcomeEmpty:
		return http.StatusNotFound
	case models.OutcomeUnresolved:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// OutcomeToErrorResponse формирует тело ответа для неуспешного результата
func OutcomeToErrorResponse(outcome models.Outcome) ErrorResponse {
	if outcome.Kind == models.OutcomeEmpty {
		return ErrorResponse{Error: noDataMessage}
	}
	if outcome.Err == nil {
		return ErrorResponse{Error: "internal server error"}
	}
	return ErrorResponse{Error: outcome.Err.Error()}
}

// ReportToResponse преобразует отчет в DTO ответа
func ReportToResponse(report *models.AccidentReport) *GeoJSONResponse {
	var scanned any = dataScannedNotAvail
	if report.ScannedRows != nil {
		scanned = *report.ScannedRows
	}
	return &GeoJSONResponse{
		GeoJSON:       report.Features,
		Query:         report.Query,
		QueryTime:     math.Round(report.QueryTime.Seconds()*10000) / 10000,
		DataScanned:   scanned,
		AccidentCount: report.AccidentCount,
	}
}
