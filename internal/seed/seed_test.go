package seed

import (
	"testing"

	"github.com/cufit/cufit-backend/internal/onboarding"
)

func TestRecipeRowsCoverEveryCombination(t *testing.T) {
	rows := RecipeRows()
	want := len(onboarding.MealTypes.IDs()) * len(onboarding.DietSelections.IDs()) *
		len(onboarding.DietPreferences.IDs()) * len(onboarding.CookingTimes.IDs())
	if len(rows) != want {
		t.Fatalf("expected %d rows, got %d", want, len(rows))
	}

	goals := make(map[string]bool)
	for _, row := range rows {
		if len(row) != 12 {
			t.Fatalf("expected 12 columns, got %d", len(row))
		}
		if !onboarding.CookingTimes.Contains(row[5].(string)) {
			t.Fatalf("unexpected cooking time %v", row[5])
		}
		goals[row[4].(string)] = true
	}
	if len(goals) != len(onboarding.Goals.IDs()) {
		t.Fatalf("expected every goal represented, got %d", len(goals))
	}
}

func TestExerciseNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range exercises {
		if seen[e.Name] {
			t.Fatalf("duplicate exercise %q", e.Name)
		}
		seen[e.Name] = true
	}
}
