package service

import (
	"fmt"
	"strings"

	"github.com/shenikar/accident_map/internal/models"
)

const accidentBaseQuery = `
    SELECT DISTINCT
           id,
           severity,
           start_time,
           description,
           weather_condition,
           distance_mi,
           ST_AsText(start_location) AS location_wkt
    FROM accidentdata
    WHERE ST_Contains(
         ST_GeogFromText('%s'),
         start_location
    )
    `

// BuildAccidentQuery собирает запрос поиска аварий внутри полигона.
// Полигон подставляется в текст как есть, фильтры передаются параметрами.
func BuildAccidentQuery(polygonWKT string, filter models.Filter) models.Query {
	base := fmt.Sprintf(accidentBaseQuery, polygonWKT)

	var sqlText, display strings.Builder
	sqlText.WriteString(base)
	display.WriteString(base)
	var args []any

	addClause := func(clause, value string) {
		if value == "" {
			return
		}
		sqlText.WriteString("\nAND " + clause + " ?")
		display.WriteString("\nAND " + clause + " " + quoteLiteral(value))
		args = append(args, value)
	}
	addClause("severity =", filter.Severity)
	addClause("to_date(start_time) >=", filter.StartDate)
	addClause("to_date(start_time) <=", filter.EndDate)

	sqlText.WriteString(";")
	display.WriteString(";")

	return models.Query{
		SQL:  sqlText.String(),
		Args: args,
		Text: display.String(),
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
