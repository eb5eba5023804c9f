package nefrobundle

import (
	"math"

	"nefroped_backend/app/core"
)

// BodySurfaceArea computes the Mosteller body-surface area in m² from weight
// in kg and height in cm.
func BodySurfaceArea(weightKg, heightCm float64) (float64, error) {
	fields := make(map[string]string)
	if weightKg <= 0 {
		fields["weight"] = "weight must be above 0"
	}
	if heightCm <= 0 {
		fields["height"] = "height must be above 0"
	}
	if len(fields) > 0 {
		return 0, core.NewValidationError(fields)
	}
	return math.Sqrt((weightKg * heightCm) / 3600), nil
}

// EstimatedGFR computes the original Schwartz estimate in mL/min/1.73m².
// Creatinine must be above zero, a division by zero is an input error here,
// not a silent infinity.
func EstimatedGFR(k, heightCm, creatinineMgDl float64) (float64, error) {
	fields := make(map[string]string)
	if heightCm <= 0 {
		fields["height"] = "height must be above 0"
	}
	if creatinineMgDl <= 0 {
		fields["creatinine"] = "creatinine must be above 0"
	}
	if len(fields) > 0 {
		return 0, core.NewValidationError(fields)
	}
	return (k * heightCm) / creatinineMgDl, nil
}

// PrednisoloneAttackDose returns the attack dose in mg, 60 mg/m² capped at the
// ISKDC protocol ceiling of 60 mg regardless of body-surface area.
func PrednisoloneAttackDose(sc float64) float64 {
	return math.Min(sc*60, 60.0)
}

// PrednisoloneMaintenanceDose returns the maintenance dose in mg, 40 mg/m²
// capped at 40 mg.
func PrednisoloneMaintenanceDose(sc float64) float64 {
	return math.Min(sc*40, 40.0)
}

// Albumin20Volume returns the 20% albumin infusion volume in mL,
// 0.5 g/kg at 20% concentration, i.e. 2.5 mL/kg.
func Albumin20Volume(weightKg float64) float64 {
	return weightKg * 0.5 * 5
}

// FurosemideDose returns the suggested IV furosemide dose in mg, 0.5 mg/kg.
func FurosemideDose(weightKg float64) float64 {
	return weightKg * 0.5
}
