package service

import (
	"strings"
	"testing"

	"github.com/shenikar/accident_map/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longBeachWKT = "POLYGON((-118.25 33.75, -118.10 33.75, -118.10 33.88, -118.25 33.88, -118.25 33.75))"

func TestBuildAccidentQuery_PolygonVerbatim(t *testing.T) {
	q := BuildAccidentQuery(longBeachWKT, models.Filter{})

	assert.Contains(t, q.SQL, "ST_GeogFromText('"+longBeachWKT+"')")
	assert.Contains(t, q.Text, "ST_GeogFromText('"+longBeachWKT+"')")
	assert.Contains(t, q.SQL, "FROM accidentdata")
	assert.Contains(t, q.SQL, "ST_AsText(start_location) AS location_wkt")
	assert.True(t, strings.HasSuffix(q.SQL, ";"))
	assert.Empty(t, q.Args)
	assert.Equal(t, q.SQL, q.Text)
}

func TestBuildAccidentQuery_Severity(t *testing.T) {
	q := BuildAccidentQuery(longBeachWKT, models.Filter{Severity: "Severe"})

	assert.Equal(t, 1, strings.Count(q.Text, "AND severity = 'Severe'"))
	assert.Equal(t, 1, strings.Count(q.SQL, "AND severity = ?"))
	assert.Equal(t, []any{"Severe"}, q.Args)

	noSeverity := BuildAccidentQuery(longBeachWKT, models.Filter{})
	assert.NotContains(t, noSeverity.Text, "severity =")
}

func TestBuildAccidentQuery_DateRangeOrder(t *testing.T) {
	q := BuildAccidentQuery(longBeachWKT, models.Filter{StartDate: "2023-01-01", EndDate: "2023-01-31"})

	start := strings.Index(q.Text, "AND to_date(start_time) >= '2023-01-01'")
	end := strings.Index(q.Text, "AND to_date(start_time) <= '2023-01-31'")
	require.NotEqual(t, -1, start)
	require.NotEqual(t, -1, end)
	assert.Less(t, start, end)
	assert.Equal(t, []any{"2023-01-01", "2023-01-31"}, q.Args)
}

func TestBuildAccidentQuery_AllFilters(t *testing.T) {
	q := BuildAccidentQuery(longBeachWKT, models.Filter{Severity: "Minor", StartDate: "2023-01-01", EndDate: "2023-01-31"})

	assert.Equal(t, []any{"Minor", "2023-01-01", "2023-01-31"}, q.Args)
	assert.Equal(t, 3, strings.Count(q.SQL, "?"))
	assert.True(t, strings.HasSuffix(q.Text, "AND to_date(start_time) <= '2023-01-31';"))
}

func TestBuildAccidentQuery_Deterministic(t *testing.T) {
	f := models.Filter{Severity: "Minor", StartDate: "2023-01-01"}
	assert.Equal(t, BuildAccidentQuery(longBeachWKT, f), BuildAccidentQuery(longBeachWKT, f))
}

func TestBuildAccidentQuery_ValuesAreBound(t *testing.T) {
	injection := "x' OR '1'='1"
	q := BuildAccidentQuery(longBeachWKT, models.Filter{Severity: injection})

	assert.NotContains(t, q.SQL, injection)
	assert.Equal(t, []any{injection}, q.Args)
	assert.Contains(t, q.Text, "AND severity = 'x'' OR ''1''=''1'")
}
