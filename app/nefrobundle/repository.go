package nefrobundle

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/jinzhu/gorm"
	tools "github.com/kirillDanshin/nulltime"

	"nefroped_backend/app/core"
)

// PatientRepository owns the database handle for all patient and observation
// access. Every public method is one scoped use of the handle, registration is
// a single atomic insert of the full record including the derived fields.
type PatientRepository struct {
	ormDB *gorm.DB
}

func NewPatientRepository(ormDB *gorm.DB) *PatientRepository {
	return &PatientRepository{ormDB: ormDB}
}

// RegisterPatient validates the leaf inputs, derives K, bsa, egfr and the
// attack dose, and persists the full record in one insert. The id comes from
// the store's auto-increment.
func (rep *PatientRepository) RegisterPatient(reg *PatientRegistration) (*Patient, error) {
	if !reg.Validate() {
		return nil, core.NewValidationError(reg.Errors)
	}

	ageCategory := ClassifyAge(reg.Years, reg.Months, reg.Sex, reg.Premature)

	sc, err := BodySurfaceArea(reg.DryWeight, reg.Height)
	if err != nil {
		return nil, err
	}
	tfge, err := EstimatedGFR(ageCategory.K, reg.Height, reg.Creatinine)
	if err != nil {
		return nil, err
	}

	patient := Patient{}
	copier.Copy(&patient, reg)
	patient.Name = strings.ToUpper(strings.TrimSpace(reg.Name))
	patient.K = ageCategory.K
	patient.Bsa = sc
	patient.Egfr = tfge
	patient.AttackDose = PrednisoloneAttackDose(sc)

	if err := rep.ormDB.Create(&patient).Error; err != nil {
		return nil, &core.PersistenceError{Op: "insert patient", Err: err}
	}

	return &patient, nil
}

// ListPatients returns all patients as slim (id, name, bed) rows in insertion
// order.
func (rep *PatientRepository) ListPatients() (PatientListEntries, error) {
	entries := PatientListEntries{}
	if err := rep.ormDB.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, &core.PersistenceError{Op: "list patients", Err: err}
	}
	return entries, nil
}

// FindPatientsByName matches the query case-insensitively against the stored
// uppercased names. The term is always bound as a parameter, never formatted
// into the query text.
func (rep *PatientRepository) FindPatientsByName(query string) (Patients, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, core.NewValidationError(map[string]string{"q": "search query empty"})
	}

	patients := Patients{}
	if err := rep.ormDB.Where("name LIKE ?", "%"+strings.ToUpper(query)+"%").Find(&patients).Error; err != nil {
		return nil, &core.PersistenceError{Op: "search patients", Err: err}
	}
	return patients, nil
}

func (rep *PatientRepository) GetPatient(patientId uint) (*Patient, error) {
	patient := Patient{}
	err := rep.ormDB.First(&patient, patientId).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("patient %d: %w", patientId, core.ErrNotFound)
	}
	if err != nil {
		return nil, &core.PersistenceError{Op: "load patient", Err: err}
	}
	return &patient, nil
}

// RecordObservation appends one vital-sign reading for an existing patient.
// Duplicate (date, slot) entries are allowed.
func (rep *PatientRepository) RecordObservation(patientId uint, obs *Observation) (*Observation, error) {
	if !obs.Validate() {
		return nil, core.NewValidationError(obs.Errors)
	}

	if _, err := rep.GetPatient(patientId); err != nil {
		return nil, err
	}

	obs.PatientId = patientId
	if err := rep.ormDB.Create(obs).Error; err != nil {
		return nil, &core.PersistenceError{Op: "insert observation", Err: err}
	}
	return obs, nil
}

// GetObservations returns a patient's readings ordered by date descending and
// time slot ascending within a date. The DD/MM/YYYY text dates are reassembled
// for ordering in the store, the slot set keeps same-day order unambiguous.
func (rep *PatientRepository) GetObservations(patientId uint) (Observations, error) {
	observations := Observations{}
	err := rep.ormDB.Where("patient_id = ?", patientId).
		Order("substr(date, 7, 4) DESC, substr(date, 4, 2) DESC, substr(date, 1, 2) DESC, time_slot ASC").
		Find(&observations).Error
	if err != nil {
		return nil, &core.PersistenceError{Op: "load observations", Err: err}
	}
	return observations, nil
}

// LogReport records that a chart for the patient left the system.
func (rep *PatientRepository) LogReport(patientId uint, filename string) error {
	entry := ReportLog{
		PatientId:   patientId,
		Filename:    filename,
		GeneratedAt: tools.NullTime{Time: time.Now(), Valid: true},
	}
	if err := rep.ormDB.Create(&entry).Error; err != nil {
		return &core.PersistenceError{Op: "insert report log", Err: err}
	}
	return nil
}
