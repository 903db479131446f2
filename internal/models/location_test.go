package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationTable_LookupAndNames(t *testing.T) {
	table := NewLocationTable([]Location{
		{Name: "Long Beach", WKT: "POLYGON((0 0,1 0,1 1,0 0))"},
		{Name: "Santa Monica", WKT: "POLYGON((2 2,3 2,3 3,2 2))"},
		{Name: "Long Beach", WKT: "POLYGON((5 5,6 5,6 6,5 5))"},
	})

	wkt, ok := table.Lookup("Long Beach")
	require.True(t, ok)
	assert.Equal(t, "POLYGON((5 5,6 5,6 6,5 5))", wkt)

	_, ok = table.Lookup("Nowhere")
	assert.False(t, ok)

	assert.Equal(t, []string{"Long Beach", "Santa Monica"}, table.Names())

	// изменение копии не влияет на таблицу
	names := table.Names()
	names[0] = "changed"
	assert.Equal(t, "Long Beach", table.Names()[0])
}

func TestLocationTable_Nil(t *testing.T) {
	var table *LocationTable
	_, ok := table.Lookup("Long Beach")
	assert.False(t, ok)
	assert.Empty(t, table.Names())
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")

	resErr := &ResolutionError{Location: "Nowhere123", Msg: "Location 'Nowhere123' not found", Err: cause}
	assert.Equal(t, "Location 'Nowhere123' not found", resErr.Error())
	assert.ErrorIs(t, resErr, cause)

	execErr := &ExecutionError{Op: "execute query", Err: cause}
	assert.Equal(t, "execute query: connection refused", execErr.Error())
	assert.ErrorIs(t, execErr, cause)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "found", OutcomeFound.String())
	assert.Equal(t, "empty", OutcomeEmpty.String())
	assert.Equal(t, "unresolved", OutcomeUnresolved.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
