package nefrobundle

// AgeCategory pairs the Schwartz constant with its human-readable label.
type AgeCategory struct {
	K        float64 `json:"k"`
	Category string  `json:"category"`
}

// ClassifyAge maps raw age, sex and the prematurity flag to the Schwartz
// constant K. Total over its domain, every combination yields exactly one
// category. The prematurity flag only matters below 12 months of age.
func ClassifyAge(years, months int, sex string, premature bool) AgeCategory {
	totalMonths := years*12 + months

	if totalMonths < 12 {
		if premature {
			return AgeCategory{K: K_PretermNewborn, Category: Category_PretermNewborn}
		}
		return AgeCategory{K: K_TermNewborn, Category: Category_TermNewborn}
	}

	if sex == Sex_Male && years >= 13 {
		return AgeCategory{K: K_MaleAdolescent, Category: Category_MaleAdolescent}
	}

	return AgeCategory{K: K_Child, Category: Category_Child}
}
