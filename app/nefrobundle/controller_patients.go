package nefrobundle

import (
	"log"
	"net/http"
)

// savePatient swagger:route POST /patients patients savePatient
//
// registers a new patient and stores the derived clinical values
//
// Responses:
//    default: HandleErrorData
//		  201:
//			data: Patient
//        400: HandleErrorData "validation failed"
func (c *NefroController) SavePatientHandler(w http.ResponseWriter, r *http.Request) {
	registration := PatientRegistration{}
	if err := c.GetContent(&registration, r); err != nil {
		log.Println(err)
		c.HandleErrorWithStatus(err, w, http.StatusBadRequest)
		return
	}

	patient, err := c.repository.RegisterPatient(&registration)
	if c.HandleError(err, w) {
		return
	}

	c.SendJSON(w, &patient, http.StatusCreated)
}

// getPatients swagger:route GET /patients patients getPatients
//
// retrieves all patients as (id, name, bed) rows
//
// Responses:
//    default: HandleErrorData
//		  200:
//			data: []PatientListEntry
func (c *NefroController) GetPatientsHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := c.repository.ListPatients()
	if c.HandleError(err, w) {
		return
	}

	c.SendJSON(w, &entries, http.StatusOK)
}

// findPatients swagger:route GET /patients/search patients findPatients
//
// case-insensitive substring search against the stored patient names
//
// Responses:
//    default: HandleErrorData
//		  200:
//			data: []Patient
//        400: HandleErrorData "query empty"
func (c *NefroController) FindPatientsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	patients, err := c.repository.FindPatientsByName(query)
	if c.HandleError(err, w) {
		return
	}

	c.SendJSON(w, &patients, http.StatusOK)
}

// getPatient swagger:route GET /patients/{patientId} patients getPatient
//
// retrieves one patient including the stored derived values
//
// Responses:
//    default: HandleErrorData
//		  200:
//			data: Patient
//        404: HandleErrorData "unknown patient"
func (c *NefroController) GetPatientHandler(w http.ResponseWriter, r *http.Request) {
	patient, err := c.repository.GetPatient(c.getPatientIdVar(r))
	if c.HandleError(err, w) {
		return
	}

	c.SendJSON(w, &patient, http.StatusOK)
}
