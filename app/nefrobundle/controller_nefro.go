package nefrobundle

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"

	"nefroped_backend/app/core"
)

// NefroController serves the patient, observation and report routes.
type NefroController struct {
	core.Controller
	ormDB      *gorm.DB
	repository *PatientRepository
}

// NewNefroController instance
func NewNefroController(ormDB *gorm.DB) *NefroController {
	return &NefroController{
		ormDB:      ormDB,
		repository: NewPatientRepository(ormDB),
	}
}

func (c *NefroController) getPatientIdVar(r *http.Request) uint {
	vars := mux.Vars(r)
	patientId, _ := strconv.ParseInt(vars["patientId"], 10, 64)
	return uint(patientId)
}
