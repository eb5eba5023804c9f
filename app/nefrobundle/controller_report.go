package nefrobundle

import (
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"strconv"

	"nefroped_backend/app/core"
)

type HelperSendMail struct {
	To      []string `json:"to"`
	Cc      []string `json:"cc"`
	Bcc     []string `json:"bcc"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// exportPatientReport swagger:route GET /patients/{patientId}/report reports exportPatientReport
//
// renders the patient's monitoring chart and offers it for download
//
// produces:
// - application/pdf
// Responses:
//    default: HandleErrorData
//        404: HandleErrorData "unknown patient"
func (c *NefroController) ExportPatientReportHandler(w http.ResponseWriter, r *http.Request) {
	patient, err := c.repository.GetPatient(c.getPatientIdVar(r))
	if c.HandleError(err, w) {
		return
	}

	observations, err := c.repository.GetObservations(patient.ID)
	if c.HandleError(err, w) {
		return
	}

	pdfBytes, err := RenderPatientReport(patient, observations)
	if c.HandleError(err, w) {
		return
	}

	fileName := ReportFilename(patient)
	if err := c.repository.LogReport(patient.ID, fileName); err != nil {
		log.Println(err)
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Add("Access-Control-Allow-Origin", "*")
	w.Write(pdfBytes)
}

// sendPatientReport swagger:route POST /patients/{patientId}/report/send reports sendPatientReport
//
// renders the patient's monitoring chart and mails it as attachment
//
// Responses:
//    default: HandleErrorData
//        400: HandleErrorData "no valid recipient"
//        404: HandleErrorData "unknown patient"
func (c *NefroController) SendMailPatientReportHandler(w http.ResponseWriter, r *http.Request) {
	helperSendMail := HelperSendMail{}
	if err := c.GetContent(&helperSendMail, r); err != nil {
		log.Println(err)
		c.HandleErrorWithStatus(err, w, http.StatusBadRequest)
		return
	}

	if len(helperSendMail.To) == 0 {
		c.HandleErrorWithStatus(errors.New("no recipient given"), w, http.StatusBadRequest)
		return
	}
	for _, recipient := range helperSendMail.To {
		if err := core.ValidateFormat(recipient); err != nil {
			c.HandleErrorWithStatus(errors.New("E-Mail: "+recipient+" "+err.Error()), w, http.StatusBadRequest)
			return
		}
	}

	patient, err := c.repository.GetPatient(c.getPatientIdVar(r))
	if c.HandleError(err, w) {
		return
	}

	observations, err := c.repository.GetObservations(patient.ID)
	if c.HandleError(err, w) {
		return
	}

	pdfBytes, err := RenderPatientReport(patient, observations)
	if c.HandleError(err, w) {
		return
	}

	fileName := ReportFilename(patient)
	tmpFile := c.GetTmpUploadPath() + fileName
	if err := ioutil.WriteFile(tmpFile, pdfBytes, 0644); err != nil {
		c.HandleError(err, w)
		return
	}

	subject := helperSendMail.Subject
	if subject == "" {
		subject = "Monitoring chart " + patient.Name
	}

	if err := core.SendMail("", helperSendMail.To, helperSendMail.Cc, helperSendMail.Bcc, subject, helperSendMail.Body, []string{tmpFile}); err != nil {
		c.HandleError(err, w)
		return
	}

	if err := c.repository.LogReport(patient.ID, fileName); err != nil {
		log.Println(err)
	}

	msg := core.ResponseData{
		Status:  1,
		Message: "Report sent",
	}
	c.SendJSON(w, &msg, http.StatusOK)
}

// exportObservations swagger:route GET /patients/{patientId}/observations/export observations exportObservations
//
// exports the patient's observation series as a spreadsheet
//
// produces:
// - application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// Responses:
//    default: HandleErrorData
//        404: HandleErrorData "unknown patient"
func (c *NefroController) ExportObservationsXlsxHandler(w http.ResponseWriter, r *http.Request) {
	patient, err := c.repository.GetPatient(c.getPatientIdVar(r))
	if c.HandleError(err, w) {
		return
	}

	observations, err := c.repository.GetObservations(patient.ID)
	if c.HandleError(err, w) {
		return
	}

	file, err := BuildObservationSheet(patient, observations)
	if c.HandleError(err, w) {
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="Observations_`+patient.Name+`.xlsx"`)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Add("Access-Control-Allow-Origin", "*")
	if err := file.Write(w); err != nil {
		log.Println(err)
	}
}

// HelperDoseReference carries the adjunct dosing values for a given weight,
// plus the sc-scaled doses when a height is supplied.
type HelperDoseReference struct {
	Weight          float64  `json:"weight"`
	AlbuminVolume   float64  `json:"albumin_volume"`
	FurosemideDose  float64  `json:"furosemide_dose"`
	Bsa             *float64 `json:"bsa,omitempty"`
	AttackDose      *float64 `json:"attack_dose,omitempty"`
	MaintenanceDose *float64 `json:"maintenance_dose,omitempty"`
	AlertText       []string `json:"alert_text"`
}

// Red-flag list shown by the unit's calculator, static text.
var referenceAlertText = []string{
	"Oliguria/anuria: urine output below 1 mL/kg/h after hydration.",
	"Macroscopic haematuria: risk of renal vein thrombosis.",
	"Hypertensive crisis: BP above the 95th percentile + 12 mmHg for age/height.",
	"Acute abdomen: suspected spontaneous bacterial peritonitis.",
	"Dyspnoea: risk of pulmonary oedema or large pleural effusion.",
	"Lower-limb asymmetry: unilateral pain or oedema (DVT risk).",
	"Steroid resistance: persistent 4+ proteinuria after 8 weeks.",
}

// getReferenceDoses swagger:route GET /reference/doses reference getReferenceDoses
//
// returns weight-scaled adjunct doses and the red-flag alert text
//
// Responses:
//    default: HandleErrorData
//		  200:
//			data: HelperDoseReference
//        400: HandleErrorData "weight out of range"
func (c *NefroController) GetReferenceDosesHandler(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil || weight <= 0 || weight > 150 {
		c.HandleError(core.NewValidationError(map[string]string{"weight": "weight must be above 0 and at most 150 kg"}), w)
		return
	}

	reference := HelperDoseReference{
		Weight:         weight,
		AlbuminVolume:  Albumin20Volume(weight),
		FurosemideDose: FurosemideDose(weight),
		AlertText:      referenceAlertText,
	}

	if heightParam := r.URL.Query().Get("height"); heightParam != "" {
		height, err := strconv.ParseFloat(heightParam, 64)
		if err != nil || height <= 0 || height > 200 {
			c.HandleError(core.NewValidationError(map[string]string{"height": "height must be above 0 and at most 200 cm"}), w)
			return
		}
		sc, err := BodySurfaceArea(weight, height)
		if c.HandleError(err, w) {
			return
		}
		attack := PrednisoloneAttackDose(sc)
		maintenance := PrednisoloneMaintenanceDose(sc)
		reference.Bsa = &sc
		reference.AttackDose = &attack
		reference.MaintenanceDose = &maintenance
	}

	c.SendJSON(w, &reference, http.StatusOK)
}
