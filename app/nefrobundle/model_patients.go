package nefrobundle

import (
	tools "github.com/kirillDanshin/nulltime"

	"nefroped_backend/app/core"
)

const (
	Sex_Female = "F"
	Sex_Male   = "M"
)

// Schwartz constants (original 1976/1984 formula, Jaffé creatinine)
const (
	K_PretermNewborn = 0.33
	K_TermNewborn    = 0.45
	K_Child          = 0.55
	K_MaleAdolescent = 0.70
)

const (
	Category_PretermNewborn = "Preterm newborn"
	Category_TermNewborn    = "Term newborn to 1 year"
	Category_MaleAdolescent = "Male adolescent"
	Category_Child          = "Child / Female adolescent"
)

// TimeSlots are the only valid observation times. Free time entry is not
// accepted, same-day ordering relies on the fixed slots.
var TimeSlots = []string{"08:00", "14:00", "20:00"}

// Dates are persisted as DD/MM/YYYY text
const DateLayout = "02/01/2006"

// Patient is one admitted individual under nephrotic-syndrome evaluation.
// The record is written once at registration and never updated; bsa, egfr and
// attack_dose are stored denormalized from the registration inputs.
type Patient struct {
	core.Model
	Name          string  `json:"name"`
	Bed           string  `json:"bed"`
	AdmissionDate string  `json:"admission_date"`
	Years         int     `json:"years"`
	Months        int     `json:"months"`
	Days          int     `json:"days"`
	Sex           string  `json:"sex" gorm:"type:VARCHAR(1)"`
	K             float64 `json:"k"`
	DryWeight     float64 `json:"dry_weight"`
	Height        float64 `json:"height"`
	Bsa           float64 `json:"bsa" gorm:"column:bsa"`
	Egfr          float64 `json:"egfr" gorm:"column:egfr"`
	AttackDose    float64 `json:"attack_dose"`

	Errors map[string]string `json:"-" gorm:"-"`
}
type Patients []Patient

// PatientListEntry is the slim row returned by the patient list.
type PatientListEntry struct {
	core.Model
	Name string `json:"name"`
	Bed  string `json:"bed"`
}
type PatientListEntries []PatientListEntry

func (PatientListEntry) TableName() string {
	return "patients"
}

// Observation is one timestamped vital-sign reading of a patient. Append-only,
// duplicate (date, slot) entries are allowed.
type Observation struct {
	core.Model
	PatientId       uint    `json:"-"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"time_slot"`
	Weight          float64 `json:"weight"`
	BloodPressure   string  `json:"blood_pressure"`
	HeartRate       int     `json:"heart_rate"`
	RespiratoryRate int     `json:"respiratory_rate"`
	Temperature     float64 `json:"temperature"`

	Errors map[string]string `json:"-" gorm:"-"`
}
type Observations []Observation

// ReportLog records every chart that left the system, by download or mail.
type ReportLog struct {
	core.Model
	PatientId   uint           `json:"-"`
	Filename    string         `json:"filename"`
	GeneratedAt tools.NullTime `json:"generated_at" gorm:"type:datetime"`
}
type ReportLogs []ReportLog

// PatientRegistration carries the leaf inputs of a registration. Creatinine and
// the prematurity flag feed the derived fields and are not persisted themselves.
type PatientRegistration struct {
	Name          string  `json:"name"`
	Bed           string  `json:"bed"`
	AdmissionDate string  `json:"admission_date"`
	Years         int     `json:"years"`
	Months        int     `json:"months"`
	Days          int     `json:"days"`
	Sex           string  `json:"sex"`
	Premature     bool    `json:"premature"`
	DryWeight     float64 `json:"dry_weight"`
	Height        float64 `json:"height"`
	Creatinine    float64 `json:"creatinine"`

	Errors map[string]string `json:"-"`
}
