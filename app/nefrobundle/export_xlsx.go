package nefrobundle

import (
	"github.com/tealeg/xlsx"

	"nefroped_backend/app/core"
)

// BuildObservationSheet builds a spreadsheet of the patient's observation
// series, one row per reading in repository order, mirroring the chart table.
func BuildObservationSheet(patient *Patient, observations Observations) (*xlsx.File, error) {
	if patient == nil || patient.Name == "" {
		return nil, &core.RenderError{Detail: "patient record incomplete"}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Observations")
	if err != nil {
		return nil, &core.RenderError{Detail: err.Error()}
	}

	row := sheet.AddRow()
	row.AddCell().SetString("Patient")
	row.AddCell().SetString(patient.Name)
	row = sheet.AddRow()
	row.AddCell().SetString("Bed")
	row.AddCell().SetString(patient.Bed)
	sheet.AddRow()

	header := sheet.AddRow()
	for _, title := range []string{"Date", "Time", "Weight (kg)", "Blood pressure", "Heart rate", "Resp. rate", "Temperature (C)"} {
		header.AddCell().SetString(title)
	}

	for _, obs := range observations {
		row = sheet.AddRow()
		row.AddCell().SetString(obs.Date)
		row.AddCell().SetString(obs.TimeSlot)
		row.AddCell().SetFloatWithFormat(obs.Weight, "0.0")
		row.AddCell().SetString(obs.BloodPressure)
		row.AddCell().SetInt(obs.HeartRate)
		row.AddCell().SetInt(obs.RespiratoryRate)
		row.AddCell().SetFloatWithFormat(obs.Temperature, "0.0")
	}

	return file, nil
}
