package nefrobundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAge(t *testing.T) {
	tests := []struct {
		name      string
		years     int
		months    int
		sex       string
		premature bool
		k         float64
		category  string
	}{
		{"preterm newborn", 0, 3, Sex_Female, true, K_PretermNewborn, Category_PretermNewborn},
		{"term newborn", 0, 11, Sex_Male, false, K_TermNewborn, Category_TermNewborn},
		{"twelve months is no newborn", 1, 0, Sex_Female, true, K_Child, Category_Child},
		{"child", 5, 0, Sex_Male, false, K_Child, Category_Child},
		{"female adolescent stays at 0.55", 15, 4, Sex_Female, false, K_Child, Category_Child},
		{"male twelve is still child", 12, 11, Sex_Male, false, K_Child, Category_Child},
		{"male adolescent", 13, 0, Sex_Male, false, K_MaleAdolescent, Category_MaleAdolescent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAge(tt.years, tt.months, tt.sex, tt.premature)
			assert.Equal(t, tt.k, got.K)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

// Every input combination must land on exactly one of the four defined pairs.
func TestClassifyAge_Total(t *testing.T) {
	valid := map[float64]string{
		K_PretermNewborn: Category_PretermNewborn,
		K_TermNewborn:    Category_TermNewborn,
		K_Child:          Category_Child,
		K_MaleAdolescent: Category_MaleAdolescent,
	}

	for years := 0; years <= 18; years++ {
		for months := 0; months <= 11; months++ {
			for _, sex := range []string{Sex_Female, Sex_Male} {
				for _, premature := range []bool{false, true} {
					got := ClassifyAge(years, months, sex, premature)
					category, ok := valid[got.K]
					assert.True(t, ok, "unexpected K %v for years=%d months=%d", got.K, years, months)
					assert.Equal(t, category, got.Category)
				}
			}
		}
	}
}
