package onboarding

import "math"

const (
	metersPerFoot = 0.3048
	kgPerPound    = 0.453592
)

const (
	HeightCM   = "cm"
	HeightFeet = "feet"
	WeightKG   = "kg"
	WeightLB   = "lb"
)

type BMIInput struct {
	Height     float64 `json:"height"`
	HeightUnit string  `json:"height_unit"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
}

// CalculateBMI converts the input to metric and returns kg/m² rounded to two
// decimals. The category is taken from the unrounded value.
func CalculateBMI(in BMIInput) (BMIResult, error) {
	if in.Height <= 0 || in.Weight <= 0 || math.IsNaN(in.Height) || math.IsNaN(in.Weight) {
		return BMIResult{}, ErrInvalidMeasurement
	}

	var meters float64
	switch in.HeightUnit {
	case "", HeightCM:
		meters = in.Height / 100
	case HeightFeet:
		meters = in.Height * metersPerFoot
	default:
		return BMIResult{}, ErrInvalidMeasurement
	}

	var kg float64
	switch in.WeightUnit {
	case "", WeightKG:
		kg = in.Weight
	case WeightLB:
		kg = in.Weight * kgPerPound
	default:
		return BMIResult{}, ErrInvalidMeasurement
	}

	raw := kg / (meters * meters)
	return BMIResult{
		BMI:      round2(raw),
		Category: BMICategory(raw),
		HeightCM: round2(meters * 100),
		WeightKG: round2(kg),
	}, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal weight"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
