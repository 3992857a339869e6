package handlers

import (
	"context"
	"net/http"
	"slices"
	"testing"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/jackc/pgx/v5"
)

type stubWorkoutApp struct {
	exercises     []models.Exercise
	lastPainAreas []string
	forUserErr    error
}

func (s *stubWorkoutApp) ListExercises(_ context.Context, painAreas []string) ([]models.Exercise, error) {
	s.lastPainAreas = painAreas
	return s.exercises, nil
}

func (s *stubWorkoutApp) MasterWorkouts(_ context.Context, painAreas []string) ([]models.MasterWorkout, error) {
	s.lastPainAreas = painAreas
	return []models.MasterWorkout{{ID: 1, Name: "Squats"}}, nil
}

func (s *stubWorkoutApp) ForUser(_ context.Context, _ int64) (*models.UserWorkout, error) {
	if s.forUserErr != nil {
		return nil, s.forUserErr
	}
	return &models.UserWorkout{FilterInfo: models.WorkoutFilter{Difficulty: "beginner"}}, nil
}

func TestListExercisesReadsPainQueryAndPaginates(t *testing.T) {
	svc := &stubWorkoutApp{exercises: []models.Exercise{{ID: 1}, {ID: 2}, {ID: 3}}}
	app := newUserApp("1", "sam")
	app.Get("/workout/api/exercises/", NewWorkoutHandler(svc, &stubStepSubmitter{}).ListExercises)

	resp, body := doJSON(t, app, http.MethodGet,
		"/workout/api/exercises/?pain_and_injury=Knees,Back&pain_and_injury=Neck&page=2&limit=2", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !slices.Equal(svc.lastPainAreas, []string{"Knees", "Back", "Neck"}) {
		t.Fatalf("unexpected pain areas %v", svc.lastPainAreas)
	}
	exercises, _ := body["exercises"].([]any)
	if len(exercises) != 1 {
		t.Fatalf("expected 1 exercise on page 2, got %d", len(exercises))
	}
	meta, _ := body["pagination"].(map[string]any)
	if meta["total"] != 3.0 || meta["total_pages"] != 2.0 {
		t.Fatalf("unexpected pagination %v", meta)
	}
}

func TestMasterWorkoutsKey(t *testing.T) {
	app := newUserApp("1", "sam")
	app.Get("/workout/api/master-workouts/", NewWorkoutHandler(&stubWorkoutApp{}, &stubStepSubmitter{}).MasterWorkouts)

	_, body := doJSON(t, app, http.MethodGet, "/workout/api/master-workouts/", "")
	if list, _ := body["workout_master"].([]any); len(list) != 1 {
		t.Fatalf("expected workout_master list, got %v", body)
	}
}

func TestUserWorkoutNotFound(t *testing.T) {
	app := newUserApp("1", "sam")
	app.Get("/workout/api/user-workout/", NewWorkoutHandler(&stubWorkoutApp{forUserErr: pgx.ErrNoRows}, &stubStepSubmitter{}).UserWorkout)

	resp, _ := doJSON(t, app, http.MethodGet, "/workout/api/user-workout/", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateExerciseRoutineParsesStoredText(t *testing.T) {
	restricted := []string{"Box Jumps", "Lunges"}
	steps := &stubStepSubmitter{profile: &models.UserProfile{RestrictedExercises: &restricted}}
	app := newUserApp("5", "sam")
	app.Post("/workout/api/update-exercise-routine/", NewWorkoutHandler(&stubWorkoutApp{}, steps).UpdateExerciseRoutine)

	resp, body := doJSON(t, app, http.MethodPost, "/workout/api/update-exercise-routine/",
		`{"pain_and_injury":"Knees, Fracture, Asthma, Pain Level: 4"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, body)
	}
	if steps.lastStep != "pain-injury" || steps.lastSub.PainInjury == nil {
		t.Fatalf("expected pain-injury submission, got %q %+v", steps.lastStep, steps.lastSub)
	}
	got := steps.lastSub.PainInjury
	if !slices.Equal(got.PainAreas, []string{"Knees"}) || got.MedicalCondition != "Asthma" || got.PainLevel != 4 {
		t.Fatalf("unexpected parsed form %+v", got)
	}
	if list, _ := body["restricted_exercises"].([]any); len(list) != 2 {
		t.Fatalf("expected restricted list, got %v", body["restricted_exercises"])
	}
}

func TestUpdateExerciseRoutineRejectsBadType(t *testing.T) {
	app := newUserApp("5", "sam")
	app.Post("/workout/api/update-exercise-routine/", NewWorkoutHandler(&stubWorkoutApp{}, &stubStepSubmitter{}).UpdateExerciseRoutine)

	resp, body := doJSON(t, app, http.MethodPost, "/workout/api/update-exercise-routine/", `{"pain_and_injury":42}`)
	if resp.StatusCode != http.StatusBadRequest || body["field"] != "pain_and_injury" {
		t.Fatalf("expected 400 on pain_and_injury, got %d %v", resp.StatusCode, body)
	}
}

func TestSaveEquipmentAcceptsLegacyKey(t *testing.T) {
	steps := &stubStepSubmitter{}
	app := newUserApp("5", "sam")
	app.Post("/workout/api/save-equipment/", NewWorkoutHandler(&stubWorkoutApp{}, steps).SaveEquipment)

	resp, _ := doJSON(t, app, http.MethodPost, "/workout/api/save-equipment/", `{"workout_equipment":"dumbbells, yoga-mat"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if steps.lastStep != "equipment" || !slices.Equal(steps.lastSub.Selected, []string{"dumbbells", "yoga-mat"}) {
		t.Fatalf("unexpected submission %q %+v", steps.lastStep, steps.lastSub)
	}
}

func TestSaveEquipmentSurfacesValidation(t *testing.T) {
	steps := &stubStepSubmitter{err: &onboarding.ValidationError{Field: "equipment", Value: "none", Err: onboarding.ErrExclusiveOption}}
	app := newUserApp("5", "sam")
	app.Post("/workout/api/save-equipment/", NewWorkoutHandler(&stubWorkoutApp{}, steps).SaveEquipment)

	resp, body := doJSON(t, app, http.MethodPost, "/workout/api/save-equipment/", `{"equipment":["none","dumbbells"]}`)
	if resp.StatusCode != http.StatusBadRequest || body["field"] != "equipment" {
		t.Fatalf("expected 400 on equipment, got %d %v", resp.StatusCode, body)
	}
}

func TestUpdateStretchingAcceptsEitherKey(t *testing.T) {
	for _, payload := range []string{`{"stretching_preference":true}`, `{"enabled":true}`} {
		steps := &stubStepSubmitter{profile: &models.UserProfile{StretchingPreference: true}}
		app := newUserApp("5", "sam")
		app.Post("/workout/api/update-stretching/", NewWorkoutHandler(&stubWorkoutApp{}, steps).UpdateStretching)

		resp, body := doJSON(t, app, http.MethodPost, "/workout/api/update-stretching/", payload)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", payload, resp.StatusCode)
		}
		if steps.lastSub.Enabled == nil || !*steps.lastSub.Enabled {
			t.Fatalf("%s: expected enabled=true forwarded", payload)
		}
		if body["stretching_preference"] != true {
			t.Fatalf("%s: unexpected body %v", payload, body)
		}
	}
}

func TestExerciseDifficultyDelegatesToStep(t *testing.T) {
	steps := &stubStepSubmitter{}
	app := newUserApp("5", "sam")
	app.Post("/exercise-difficulty/", NewWorkoutHandler(&stubWorkoutApp{}, steps).ExerciseDifficulty)

	resp, _ := doJSON(t, app, http.MethodPost, "/exercise-difficulty/?editing=true", `{"difficulty":"advanced"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if steps.lastStep != "exercise-difficulty" || !steps.lastSub.Editing || steps.lastSub.Selected[0] != "advanced" {
		t.Fatalf("unexpected submission %q %+v", steps.lastStep, steps.lastSub)
	}
}
