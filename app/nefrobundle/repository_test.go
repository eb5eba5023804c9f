package nefrobundle

import (
	"errors"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"

	"nefroped_backend/app/core"
)

func newTestRepository(t *testing.T) *PatientRepository {
	t.Helper()

	ormDB, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// one connection, or every pooled connection sees its own empty :memory: db
	ormDB.DB().SetMaxOpenConns(1)
	ormDB.AutoMigrate(&Patient{}, &Observation{}, &ReportLog{})

	t.Cleanup(func() { ormDB.Close() })

	return NewPatientRepository(ormDB)
}

func validRegistration() PatientRegistration {
	return PatientRegistration{
		Name:          "Silva",
		Bed:           "3B",
		AdmissionDate: "12/08/2026",
		Years:         5,
		Months:        0,
		Days:          0,
		Sex:           Sex_Male,
		DryWeight:     20,
		Height:        110,
		Creatinine:    0.6,
	}
}

func TestRegisterPatient_RoundTrip(t *testing.T) {
	rep := newTestRepository(t)

	reg := validRegistration()
	created, err := rep.RegisterPatient(&reg)
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	entries, err := rep.ListPatients()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
	assert.Equal(t, "SILVA", entries[0].Name)
	assert.Equal(t, "3B", entries[0].Bed)

	stored, err := rep.GetPatient(created.ID)
	assert.NoError(t, err)

	// stored derived values must equal a direct recomputation from the inputs
	ageCategory := ClassifyAge(reg.Years, reg.Months, reg.Sex, reg.Premature)
	sc, _ := BodySurfaceArea(reg.DryWeight, reg.Height)
	tfge, _ := EstimatedGFR(ageCategory.K, reg.Height, reg.Creatinine)

	assert.Equal(t, ageCategory.K, stored.K)
	assert.InDelta(t, sc, stored.Bsa, 1e-9)
	assert.InDelta(t, tfge, stored.Egfr, 1e-9)
	assert.InDelta(t, PrednisoloneAttackDose(sc), stored.AttackDose, 1e-9)
}

func TestRegisterPatient_ValidatesBounds(t *testing.T) {
	rep := newTestRepository(t)

	mutated := func(mutate func(*PatientRegistration)) PatientRegistration {
		reg := validRegistration()
		mutate(&reg)
		return reg
	}

	tests := []struct {
		field string
		reg   PatientRegistration
	}{
		{"name", mutated(func(r *PatientRegistration) { r.Name = "   " })},
		{"admission_date", mutated(func(r *PatientRegistration) { r.AdmissionDate = "2026-08-12" })},
		{"years", mutated(func(r *PatientRegistration) { r.Years = 19 })},
		{"months", mutated(func(r *PatientRegistration) { r.Months = 12 })},
		{"days", mutated(func(r *PatientRegistration) { r.Days = 31 })},
		{"sex", mutated(func(r *PatientRegistration) { r.Sex = "X" })},
		{"dry_weight", mutated(func(r *PatientRegistration) { r.DryWeight = 151 })},
		{"dry_weight", mutated(func(r *PatientRegistration) { r.DryWeight = 0 })},
		{"height", mutated(func(r *PatientRegistration) { r.Height = 201 })},
		{"creatinine", mutated(func(r *PatientRegistration) { r.Creatinine = 0 })},
		{"creatinine", mutated(func(r *PatientRegistration) { r.Creatinine = 10.5 })},
	}

	for _, tt := range tests {
		reg := tt.reg
		_, err := rep.RegisterPatient(&reg)
		assert.Error(t, err, "field %s", tt.field)

		var validationErr *core.ValidationError
		assert.True(t, errors.As(err, &validationErr), "field %s", tt.field)
		assert.Contains(t, validationErr.Fields, tt.field)
	}

	// nothing persisted by any of the failed attempts
	entries, err := rep.ListPatients()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFindPatientsByName(t *testing.T) {
	rep := newTestRepository(t)

	for _, name := range []string{"Silva", "Costa"} {
		reg := validRegistration()
		reg.Name = name
		_, err := rep.RegisterPatient(&reg)
		assert.NoError(t, err)
	}

	found, err := rep.FindPatientsByName("SIL")
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "SILVA", found[0].Name)

	// case-insensitive regardless of stored casing
	found, err = rep.FindPatientsByName("sil")
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = rep.FindPatientsByName("ZZZ")
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindPatientsByName_EmptyQuery(t *testing.T) {
	rep := newTestRepository(t)

	_, err := rep.FindPatientsByName("   ")
	assert.Error(t, err)

	var validationErr *core.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func validObservation() Observation {
	return Observation{
		Date:            "12/08/2026",
		TimeSlot:        "08:00",
		Weight:          20.5,
		BloodPressure:   "100/60",
		HeartRate:       96,
		RespiratoryRate: 22,
		Temperature:     36.8,
	}
}

func TestRecordObservation_UnknownPatient(t *testing.T) {
	rep := newTestRepository(t)

	obs := validObservation()
	_, err := rep.RecordObservation(4711, &obs)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	// no write happened
	observations, err := rep.GetObservations(4711)
	assert.NoError(t, err)
	assert.Empty(t, observations)
}

func TestRecordObservation_RejectsFreeTime(t *testing.T) {
	rep := newTestRepository(t)

	reg := validRegistration()
	patient, err := rep.RegisterPatient(&reg)
	assert.NoError(t, err)

	obs := validObservation()
	obs.TimeSlot = "09:30"
	_, err = rep.RecordObservation(patient.ID, &obs)
	assert.Error(t, err)

	var validationErr *core.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "time_slot")
}

func TestRecordObservation_DuplicateSlotAllowed(t *testing.T) {
	rep := newTestRepository(t)

	reg := validRegistration()
	patient, err := rep.RegisterPatient(&reg)
	assert.NoError(t, err)

	first := validObservation()
	_, err = rep.RecordObservation(patient.ID, &first)
	assert.NoError(t, err)

	second := validObservation()
	_, err = rep.RecordObservation(patient.ID, &second)
	assert.NoError(t, err)

	observations, err := rep.GetObservations(patient.ID)
	assert.NoError(t, err)
	assert.Len(t, observations, 2)
}

func TestGetObservations_Ordering(t *testing.T) {
	rep := newTestRepository(t)

	reg := validRegistration()
	patient, err := rep.RegisterPatient(&reg)
	assert.NoError(t, err)

	// inserted out of order on purpose
	entries := []struct {
		date string
		slot string
	}{
		{"11/08/2026", "14:00"},
		{"13/08/2026", "08:00"},
		{"12/08/2026", "08:00"},
		{"11/08/2026", "08:00"},
		{"11/08/2026", "20:00"},
	}
	for _, e := range entries {
		obs := validObservation()
		obs.Date = e.date
		obs.TimeSlot = e.slot
		_, err := rep.RecordObservation(patient.ID, &obs)
		assert.NoError(t, err)
	}

	observations, err := rep.GetObservations(patient.ID)
	assert.NoError(t, err)
	assert.Len(t, observations, 5)

	// date descending, slot ascending within a date
	want := []struct {
		date string
		slot string
	}{
		{"13/08/2026", "08:00"},
		{"12/08/2026", "08:00"},
		{"11/08/2026", "08:00"},
		{"11/08/2026", "14:00"},
		{"11/08/2026", "20:00"},
	}
	for i, w := range want {
		assert.Equal(t, w.date, observations[i].Date, "row %d", i)
		assert.Equal(t, w.slot, observations[i].TimeSlot, "row %d", i)
	}
}

func TestGetObservations_EmptyForPatientWithoutReadings(t *testing.T) {
	rep := newTestRepository(t)

	reg := validRegistration()
	patient, err := rep.RegisterPatient(&reg)
	assert.NoError(t, err)

	observations, err := rep.GetObservations(patient.ID)
	assert.NoError(t, err)
	assert.NotNil(t, observations)
	assert.Empty(t, observations)
}

func TestGetPatient_NotFound(t *testing.T) {
	rep := newTestRepository(t)

	_, err := rep.GetPatient(4711)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestLogReport(t *testing.T) {
	rep := newTestRepository(t)

	reg := validRegistration()
	patient, err := rep.RegisterPatient(&reg)
	assert.NoError(t, err)

	assert.NoError(t, rep.LogReport(patient.ID, "Ficha_SILVA.pdf"))

	logs := ReportLogs{}
	assert.NoError(t, rep.ormDB.Where("patient_id = ?", patient.ID).Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, "Ficha_SILVA.pdf", logs[0].Filename)
	assert.True(t, logs[0].GeneratedAt.Valid)
}
