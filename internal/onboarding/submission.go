package onboarding

import (
	"encoding/json"
	"slices"
	"sort"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
)

// Submission is the body of a single step submit. Only the member matching
// the step's kind is read.
type Submission struct {
	Selected   []string         `json:"selected"`
	Enabled    *bool            `json:"enabled"`
	Dates      []string         `json:"dates"`
	BMI        *BMIInput        `json:"bmi"`
	PainInjury *PainInjuryInput `json:"pain_injury"`
	Editing    bool             `json:"editing"`
}

func (s Step) Validate(sub Submission) error {
	_, err := s.Apply(sub)
	return err
}

// Apply turns a submission into a profile patch that only touches the
// step's own fields.
func (s Step) Apply(sub Submission) (models.ProfilePatch, error) {
	var p models.ProfilePatch
	if err := s.applyTo(&p, sub); err != nil {
		return models.ProfilePatch{}, err
	}
	return p, nil
}

func (s Step) applyTo(p *models.ProfilePatch, sub Submission) error {
	switch s.Kind {
	case KindSingle:
		ids, err := s.resolve(sub.Selected)
		if err != nil {
			return err
		}
		setSingle(p, s.Field, ids[0])
	case KindMulti:
		ids, err := s.resolve(sub.Selected)
		if err != nil {
			return err
		}
		setMulti(p, s.Field, ids)
	case KindBoolean:
		if sub.Enabled == nil {
			return invalid(s.Field, ErrNoSelection, "")
		}
		enabled := *sub.Enabled
		p.StretchingPreference = &enabled
	case KindDates:
		picker, err := NewRestDayPicker(sub.Dates...)
		if err != nil {
			return invalid(s.Field, err, strings.Join(sub.Dates, ","))
		}
		if len(picker.Days()) < s.Min {
			return invalid(s.Field, ErrNoSelection, "")
		}
		days := picker.String()
		p.RestDays = &days
	case KindBMI:
		if sub.BMI == nil {
			return invalid(s.Field, ErrNoSelection, "")
		}
		res, err := CalculateBMI(*sub.BMI)
		if err != nil {
			return invalid(s.Field, err, "")
		}
		p.BMI, p.HeightCM, p.WeightKG = &res.BMI, &res.HeightCM, &res.WeightKG
	case KindComposite:
		if sub.PainInjury == nil {
			return invalid(s.Field, ErrNoSelection, "")
		}
		text, err := BuildPainAndInjury(*sub.PainInjury)
		if err != nil {
			return err
		}
		restricted := RestrictedForProfile(text)
		p.PainAndInjury, p.RestrictedExercises = &text, &restricted
	}
	return nil
}

// resolve maps submitted values to catalog ids, de-duplicates them and
// enforces the step's selection bounds.
func (s Step) resolve(values []string) ([]string, error) {
	var ids []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		id, ok := s.Options.Resolve(v)
		if !ok {
			return nil, invalid(s.Field, ErrUnknownOption, v)
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 && (s.Min > 0 || s.Kind == KindSingle) {
		return nil, invalid(s.Field, ErrNoSelection, "")
	}
	if s.Max > 0 && len(ids) > s.Max {
		return nil, invalid(s.Field, ErrTooMany, strings.Join(ids, ","))
	}
	if s.Exclusive != "" && len(ids) > 1 && slices.Contains(ids, s.Exclusive) {
		return nil, invalid(s.Field, ErrExclusiveOption, s.Exclusive)
	}
	return ids, nil
}

func setSingle(p *models.ProfilePatch, field, id string) {
	switch field {
	case "diet_selection":
		p.DietSelection = &id
	case "diet_preference":
		p.DietPreference = &id
	case "cooking_time_preference":
		p.CookingTimePreference = &id
	case "meal_plan":
		p.MealPlan = &id
	case "activity_level":
		p.ActivityLevel = &id
	case "exercise_difficulty":
		p.ExerciseDifficulty = &id
	case "exercise_routine":
		p.ExerciseRoutine = &id
	}
}

func setMulti(p *models.ProfilePatch, field string, ids []string) {
	switch field {
	case "goal_selection":
		p.GoalSelection = &ids
	case "meal_plan_selection":
		p.MealPlanSelection = &ids
	case "equipment":
		p.Equipment = &ids
	}
}

// PatchFromFields validates a flat update body keyed by profile field name.
// Each known field goes through its step's validation; unknown keys and
// derived fields are ignored. Lists may be JSON arrays or comma-joined
// strings.
func (f *Flow) PatchFromFields(fields map[string]json.RawMessage) (models.ProfilePatch, error) {
	var p models.ProfilePatch

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := fields[key]
		switch key {
		case "height_cm", "weight_kg":
			v, err := decodePositive(key, raw)
			if err != nil {
				return models.ProfilePatch{}, err
			}
			if key == "height_cm" {
				p.HeightCM = &v
			} else {
				p.WeightKG = &v
			}
			continue
		case "bmi":
			// Stored as submitted.
			v, err := decodePositive(key, raw)
			if err != nil {
				return models.ProfilePatch{}, err
			}
			v = round2(v)
			p.BMI = &v
			continue
		}

		step, ok := f.StepByField(key)
		if !ok {
			continue
		}
		sub, err := decodeField(step, raw)
		if err != nil {
			return models.ProfilePatch{}, err
		}
		if err := step.applyTo(&p, sub); err != nil {
			return models.ProfilePatch{}, err
		}
	}
	return p, nil
}

func decodeField(step Step, raw json.RawMessage) (Submission, error) {
	var sub Submission
	switch step.Kind {
	case KindSingle, KindMulti:
		values, err := decodeList(raw)
		if err != nil {
			return sub, invalid(step.Field, ErrUnknownOption, string(raw))
		}
		sub.Selected = values
	case KindBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return sub, invalid(step.Field, ErrNoSelection, string(raw))
		}
		sub.Enabled = &b
	case KindDates:
		values, err := decodeList(raw)
		if err != nil {
			return sub, invalid(step.Field, ErrInvalidDate, string(raw))
		}
		sub.Dates = values
	case KindComposite:
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			in := ParsePainAndInjury(text)
			sub.PainInjury = &in
			return sub, nil
		}
		var in PainInjuryInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return sub, invalid(step.Field, ErrNoSelection, string(raw))
		}
		sub.PainInjury = &in
	}
	return sub, nil
}

// decodeList accepts a JSON array of strings or a single comma-joined string.
func decodeList(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil, err
	}
	var out []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

func decodePositive(field string, raw json.RawMessage) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || v <= 0 {
		return 0, invalid(field, ErrInvalidMeasurement, string(raw))
	}
	return v, nil
}
