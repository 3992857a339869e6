package onboarding

import (
	"slices"
	"strconv"
	"strings"
)

const (
	painLevelPrefix = "Pain Level: "
	noneOption      = "None"
	MaxPainLevel    = 10
)

type PainInjuryInput struct {
	PainAreas         []string `json:"pain_areas"`
	Injuries          []string `json:"injuries"`
	Surgeries         []string `json:"surgeries"`
	MotionLimitations []string `json:"motion_limitations"`
	MedicalCondition  string   `json:"medical_condition"`
	PainLevel         int      `json:"pain_level"`
}

// BuildPainAndInjury joins the form into the stored free-text form. The
// medical condition defaults to "None" and the pain level always comes last.
func BuildPainAndInjury(in PainInjuryInput) (string, error) {
	if in.PainLevel < 0 || in.PainLevel > MaxPainLevel {
		return "", invalid("pain_level", ErrInvalidPainLevel, strconv.Itoa(in.PainLevel))
	}
	groups := []struct {
		field   string
		catalog Catalog
		values  []string
	}{
		{"pain_areas", PainAreas, in.PainAreas},
		{"injuries", Injuries, in.Injuries},
		{"surgeries", Surgeries, in.Surgeries},
		{"motion_limitations", MotionLimitations, in.MotionLimitations},
	}

	var parts []string
	for _, g := range groups {
		for _, v := range g.values {
			id, ok := g.catalog.Resolve(v)
			if !ok {
				return "", invalid(g.field, ErrUnknownOption, v)
			}
			if !slices.Contains(parts, id) {
				parts = append(parts, id)
			}
		}
	}

	condition := noneOption
	if in.MedicalCondition != "" {
		id, ok := MedicalConditions.Resolve(in.MedicalCondition)
		if !ok {
			return "", invalid("medical_condition", ErrUnknownOption, in.MedicalCondition)
		}
		condition = id
	}
	parts = append(parts, condition, painLevelPrefix+strconv.Itoa(in.PainLevel))
	return strings.Join(parts, ", "), nil
}

// ParsePainAndInjury splits a stored value back into form groups. Unknown
// items are dropped and "None" only survives as the medical condition.
func ParsePainAndInjury(stored string) PainInjuryInput {
	out := PainInjuryInput{MedicalCondition: noneOption}
	for _, item := range strings.Split(stored, ",") {
		item = strings.TrimSpace(item)
		switch {
		case item == "" || item == noneOption:
		case PainAreas.Contains(item):
			out.PainAreas = append(out.PainAreas, item)
		case Injuries.Contains(item):
			out.Injuries = append(out.Injuries, item)
		case Surgeries.Contains(item):
			out.Surgeries = append(out.Surgeries, item)
		case MotionLimitations.Contains(item):
			out.MotionLimitations = append(out.MotionLimitations, item)
		case MedicalConditions.Contains(item):
			out.MedicalCondition = item
		case strings.HasPrefix(item, painLevelPrefix):
			if level, err := strconv.Atoi(strings.TrimPrefix(item, painLevelPrefix)); err == nil {
				out.PainLevel = level
			}
		}
	}
	return out
}

var restrictedByArea = map[string][]string{
	"Knees": {
		"Squats", "Lunges", "Jumping", "Box Jumps", "Leg Press", "Step-Ups", "Running",
		"Jump Squats", "Plyometric Training", "Wall Sits", "High Knees", "Burpees",
	},
	"Back": {
		"Deadlifts", "Bent-over Rows", "Superman Exercise", "Good Mornings", "Barbell Rows",
		"Pull-ups", "Heavy Back Extensions", "Romanian Deadlifts", "Kettlebell Swings",
		"Cable Rows", "T-Bar Rows", "Lat Pulldowns",
	},
	"Shoulders": {
		"Overhead Press", "Lateral Raises", "Upright Rows", "Dips", "Arnold Press",
		"Handstand Push-ups", "Behind-the-Neck Press", "Military Press", "Kettlebell Press",
		"Front Raises", "Cable Lateral Raises",
	},
	"Ankles": {
		"Jump Rope", "Calf Raises", "Sprint Training", "Plyometrics", "Basketball Drills",
		"Explosive Jumps", "Box Jumps", "Hill Running", "Single-Leg Hops",
	},
	"Hips": {
		"Deep Squats", "Hip Thrusts", "Leg Press", "Side Lunges", "Deadlifts",
		"Sumo Squats", "Bulgarian Split Squats", "Romanian Deadlifts", "Cossack Squats",
		"Box Step-Ups", "Glute Bridges", "Cable Kickbacks",
	},
	"Neck": {
		"Neck Bridges", "Shrugs", "Overhead Press", "Weighted Neck Exercises",
		"Behind-the-Neck Press", "Barbell Shrugs", "Trap Bar Deadlifts",
	},
	"Wrists": {
		"Push-ups", "Bench Press", "Front Squats", "Kettlebell Swings",
		"Pull-ups", "Planks", "Farmer's Walk", "Handstands",
	},
	"Elbows": {
		"Triceps Dips", "Close-Grip Bench Press", "Skull Crushers", "Overhead Triceps Extension",
		"EZ Bar Curls", "Hammer Curls", "Wrist Curls",
	},
}

// RestrictedExercises returns the sorted, de-duplicated exercise names to
// avoid for the given items. Items that are not pain areas are ignored, so a
// full stored pain_and_injury split on ", " can be passed as is.
func RestrictedExercises(items []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range items {
		for _, name := range restrictedByArea[strings.TrimSpace(item)] {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// RestrictedForProfile derives restricted exercises from a stored
// pain_and_injury value.
func RestrictedForProfile(painAndInjury string) []string {
	return RestrictedExercises(strings.Split(painAndInjury, ","))
}
