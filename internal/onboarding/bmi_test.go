package onboarding

import (
	"errors"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		in       BMIInput
		bmi      float64
		category string
	}{
		{"metric normal", BMIInput{Height: 180, HeightUnit: HeightCM, Weight: 75, WeightUnit: WeightKG}, 23.15, "Normal weight"},
		{"imperial", BMIInput{Height: 5.9, HeightUnit: HeightFeet, Weight: 160, WeightUnit: WeightLB}, 22.44, "Normal weight"},
		{"underweight", BMIInput{Height: 180, Weight: 50}, 15.43, "Underweight"},
		{"overweight", BMIInput{Height: 180, Weight: 85}, 26.23, "Overweight"},
		{"obese", BMIInput{Height: 180, Weight: 100}, 30.86, "Obese"},
		{"category from unrounded value", BMIInput{Height: 100, Weight: 24.896}, 24.9, "Normal weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMI(tt.in)
			if err != nil {
				t.Fatalf("CalculateBMI: %v", err)
			}
			if got.BMI != tt.bmi {
				t.Fatalf("expected bmi %.2f, got %.2f", tt.bmi, got.BMI)
			}
			if got.Category != tt.category {
				t.Fatalf("expected %q, got %q", tt.category, got.Category)
			}
		})
	}
}

func TestCalculateBMINormalisesToMetric(t *testing.T) {
	got, err := CalculateBMI(BMIInput{Height: 5.9, HeightUnit: HeightFeet, Weight: 160, WeightUnit: WeightLB})
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	if got.HeightCM != 179.83 || got.WeightKG != 72.57 {
		t.Fatalf("expected 179.83cm/72.57kg, got %.2fcm/%.2fkg", got.HeightCM, got.WeightKG)
	}
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	inputs := []BMIInput{
		{Height: 0, Weight: 70},
		{Height: 170, Weight: -1},
		{Height: 170, HeightUnit: "inch", Weight: 70},
		{Height: 170, Weight: 70, WeightUnit: "stone"},
	}
	for _, in := range inputs {
		if _, err := CalculateBMI(in); !errors.Is(err, ErrInvalidMeasurement) {
			t.Fatalf("expected ErrInvalidMeasurement for %+v, got %v", in, err)
		}
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := map[float64]string{
		18.49: "Underweight",
		18.5:  "Normal weight",
		24.89: "Normal weight",
		24.9:  "Overweight",
		29.9:  "Obese",
	}
	for bmi, want := range cases {
		if got := BMICategory(bmi); got != want {
			t.Fatalf("BMICategory(%.2f) = %q, want %q", bmi, got, want)
		}
	}
}
