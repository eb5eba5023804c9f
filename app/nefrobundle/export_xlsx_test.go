package nefrobundle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"nefroped_backend/app/core"
)

func TestBuildObservationSheet(t *testing.T) {
	file, err := BuildObservationSheet(chartPatient(), chartObservations())
	assert.NoError(t, err)

	assert.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, "Observations", sheet.Name)

	// two meta rows, one blank, one header, one row per reading
	assert.Len(t, sheet.Rows, 6)
	assert.Equal(t, "SILVA", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "3B", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "Date", sheet.Rows[3].Cells[0].String())

	// readings keep repository order
	assert.Equal(t, "08:00", sheet.Rows[4].Cells[1].String())
	assert.Equal(t, "14:00", sheet.Rows[5].Cells[1].String())
	assert.Equal(t, "100/60", sheet.Rows[4].Cells[3].String())
}

func TestBuildObservationSheet_IncompleteRecord(t *testing.T) {
	var renderErr *core.RenderError

	_, err := BuildObservationSheet(nil, nil)
	assert.True(t, errors.As(err, &renderErr))

	patient := chartPatient()
	patient.Name = ""
	_, err = BuildObservationSheet(patient, nil)
	assert.True(t, errors.As(err, &renderErr))
}
