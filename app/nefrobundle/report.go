package nefrobundle

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"nefroped_backend/app/core"
)

const (
	defaultFacilityName = "Merces Children's Hospital"
	defaultFacilityUnit = "Paediatric Nephrology Unit"
)

// Static advisory printed on every chart, not derived from patient data.
const reportAdvisory = "Blood pressure must be taken at every scheduled slot (08:00, 14:00 and 20:00). " +
	"Readings above the 95th percentile for age and height, sustained tachycardia or a falling " +
	"urine output must be reported to the paediatric nephrologist on call immediately."

// Fixed so that two renders of the same record are byte-identical.
var reportCreationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func facilityHeader() (string, string) {
	name := core.Config.Facility.Name
	if name == "" {
		name = defaultFacilityName
	}
	unit := core.Config.Facility.Unit
	if unit == "" {
		unit = defaultFacilityUnit
	}
	return name, unit
}

// ReportFilename builds the download name for a patient's chart.
func ReportFilename(patient *Patient) string {
	return "Ficha_" + strings.Replace(patient.Name, " ", "_", -1) + ".pdf"
}

// RenderPatientReport renders the monitoring chart for one patient and their
// observation series, in the order the repository returned it. The output is
// deterministic for identical inputs.
func RenderPatientReport(patient *Patient, observations Observations) ([]byte, error) {
	if patient == nil || patient.Name == "" {
		return nil, &core.RenderError{Detail: "patient record incomplete"}
	}
	for _, obs := range observations {
		if obs.Date == "" || obs.TimeSlot == "" {
			return nil, &core.RenderError{Detail: fmt.Sprintf("observation %d incomplete", obs.ID)}
		}
	}

	facilityName, facilityUnit := facilityHeader()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(reportCreationDate)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetFooterFuncLpi(func(lastPage bool) {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, patient.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Text(10, 15, facilityName)
	pdf.SetFont("Arial", "B", 12)
	pdf.Text(10, 22, facilityUnit+" - Inpatient Monitoring Chart")

	y := 32.0
	pdf.SetFont("Arial", "", 11)
	pdf.Text(10, y, fmt.Sprintf("Patient: %s", patient.Name))
	y += 6
	pdf.Text(10, y, fmt.Sprintf("Bed: %s", patient.Bed))
	y += 6
	pdf.Text(10, y, fmt.Sprintf("Admitted: %s", patient.AdmissionDate))
	y += 6
	pdf.Text(10, y, fmt.Sprintf("Dry weight: %.1f kg", patient.DryWeight))
	y += 6
	pdf.Text(10, y, fmt.Sprintf("Body surface area: %.2f m2", patient.Bsa))
	y += 10

	pdf.SetXY(10, y)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(190, 4.5, reportAdvisory, "", "L", false)
	y = pdf.GetY() + 6

	colWidths := []float64{26, 18, 22, 30, 28, 32, 24}
	headers := []string{"Date", "Time", "Weight (kg)", "Blood pressure", "Heart rate", "Resp. rate", "Temp. (C)"}

	pdf.SetXY(10, y)
	pdf.SetFont("Arial", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, obs := range observations {
		pdf.SetX(10)
		pdf.CellFormat(colWidths[0], 6, obs.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, obs.TimeSlot, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%.1f", obs.Weight), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, obs.BloodPressure, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%d", obs.HeartRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[5], 6, fmt.Sprintf("%d", obs.RespiratoryRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[6], 6, fmt.Sprintf("%.1f", obs.Temperature), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &core.RenderError{Detail: err.Error()}
	}
	return buf.Bytes(), nil
}
