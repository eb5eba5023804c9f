package nefrobundle

import (
	"strings"
	"time"
)

func isValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func isValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// Validate checks every numeric bound before anything touches the store.
func (reg *PatientRegistration) Validate() bool {
	reg.Errors = make(map[string]string)

	if strings.TrimSpace(reg.Name) == "" {
		reg.Errors["name"] = "name empty"
	}
	if reg.AdmissionDate == "" || !isValidDate(reg.AdmissionDate) {
		reg.Errors["admission_date"] = "admission date must be DD/MM/YYYY"
	}
	if reg.Years < 0 || reg.Years > 18 {
		reg.Errors["years"] = "years must be between 0 and 18"
	}
	if reg.Months < 0 || reg.Months > 11 {
		reg.Errors["months"] = "months must be between 0 and 11"
	}
	if reg.Days < 0 || reg.Days > 30 {
		reg.Errors["days"] = "days must be between 0 and 30"
	}
	if reg.Sex != Sex_Female && reg.Sex != Sex_Male {
		reg.Errors["sex"] = "sex must be F or M"
	}
	if reg.DryWeight <= 0 || reg.DryWeight > 150 {
		reg.Errors["dry_weight"] = "dry weight must be above 0 and at most 150 kg"
	}
	if reg.Height <= 0 || reg.Height > 200 {
		reg.Errors["height"] = "height must be above 0 and at most 200 cm"
	}
	if reg.Creatinine <= 0 || reg.Creatinine > 10 {
		reg.Errors["creatinine"] = "creatinine must be above 0 and at most 10 mg/dL"
	}

	return len(reg.Errors) == 0
}

func (obs *Observation) Validate() bool {
	obs.Errors = make(map[string]string)

	if obs.Date == "" || !isValidDate(obs.Date) {
		obs.Errors["date"] = "date must be DD/MM/YYYY"
	}
	if !isValidTimeSlot(obs.TimeSlot) {
		obs.Errors["time_slot"] = "time slot must be one of " + strings.Join(TimeSlots, ", ")
	}
	if obs.Weight <= 0 {
		obs.Errors["weight"] = "weight must be above 0"
	}
	if obs.BloodPressure == "" {
		obs.Errors["blood_pressure"] = "blood pressure empty"
	}
	if obs.HeartRate <= 0 {
		obs.Errors["heart_rate"] = "heart rate must be above 0"
	}
	if obs.RespiratoryRate <= 0 {
		obs.Errors["respiratory_rate"] = "respiratory rate must be above 0"
	}
	if obs.Temperature <= 0 {
		obs.Errors["temperature"] = "temperature must be above 0"
	}

	return len(obs.Errors) == 0
}
