package nefrobundle

import (
	"log"
	"net/http"
)

// saveObservation swagger:route POST /patients/{patientId}/observations observations saveObservation
//
// appends one vital-sign reading for a patient
//
// Responses:
//    default: HandleErrorData
//		  201:
//			data: Observation
//        400: HandleErrorData "validation failed"
//        404: HandleErrorData "unknown patient"
func (c *NefroController) SaveObservationHandler(w http.ResponseWriter, r *http.Request) {
	observation := Observation{}
	if err := c.GetContent(&observation, r); err != nil {
		log.Println(err)
		c.HandleErrorWithStatus(err, w, http.StatusBadRequest)
		return
	}

	saved, err := c.repository.RecordObservation(c.getPatientIdVar(r), &observation)
	if c.HandleError(err, w) {
		return
	}

	c.SendJSON(w, &saved, http.StatusCreated)
}

// getObservations swagger:route GET /patients/{patientId}/observations observations getObservations
//
// retrieves a patient's readings, date descending, slot ascending within a date
//
// Responses:
//    default: HandleErrorData
//		  200:
//			data: []Observation
func (c *NefroController) GetObservationsHandler(w http.ResponseWriter, r *http.Request) {
	observations, err := c.repository.GetObservations(c.getPatientIdVar(r))
	if c.HandleError(err, w) {
		return
	}

	c.SendJSON(w, &observations, http.StatusOK)
}
