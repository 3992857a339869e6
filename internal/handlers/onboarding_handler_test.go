package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/cufit/cufit-backend/internal/services"
)

type stubStepSubmitter struct {
	lastStep string
	lastSub  onboarding.Submission
	profile  *models.UserProfile
	err      error
}

func (s *stubStepSubmitter) SubmitStep(_ context.Context, userID int64, stepID string, sub onboarding.Submission) (*services.StepResult, error) {
	s.lastStep = stepID
	s.lastSub = sub
	if s.err != nil {
		return nil, s.err
	}
	profile := s.profile
	if profile == nil {
		profile = &models.UserProfile{UserID: userID}
	}
	return &services.StepResult{Profile: profile, Next: "/next-step"}, nil
}

func newOnboardingApp(steps *stubStepSubmitter) *OnboardingHandler {
	return NewOnboardingHandler(onboarding.DefaultFlow(), steps)
}

func TestOnboardingFlowListsSteps(t *testing.T) {
	h := newOnboardingApp(&stubStepSubmitter{})
	app := newUserApp("1", "sam")
	app.Get("/onboarding/flow/", h.Flow)
	app.Get("/onboarding/edit-hub/", h.EditHub)

	resp, body := doJSON(t, app, http.MethodGet, "/onboarding/flow/", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	steps, _ := body["steps"].([]any)
	if len(steps) == 0 {
		t.Fatalf("expected steps, got %v", body)
	}
	if body["dashboard"] != onboarding.DashboardPath {
		t.Fatalf("unexpected dashboard path %v", body["dashboard"])
	}

	resp, body = doJSON(t, app, http.MethodGet, "/onboarding/edit-hub/", "")
	if resp.StatusCode != http.StatusOK || body["path"] != onboarding.EditHubPath {
		t.Fatalf("unexpected edit hub response %d %v", resp.StatusCode, body)
	}
}

func TestSubmitStepForwardsEditingQuery(t *testing.T) {
	steps := &stubStepSubmitter{}
	app := newUserApp("7", "sam")
	app.Post("/onboarding/steps/:step/", newOnboardingApp(steps).SubmitStep)

	resp, body := doJSON(t, app, http.MethodPost, "/onboarding/steps/diet-selection/?editing=true", `{"selected":["keto"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, body)
	}
	if steps.lastStep != "diet-selection" {
		t.Fatalf("expected diet-selection, got %q", steps.lastStep)
	}
	if !steps.lastSub.Editing || len(steps.lastSub.Selected) != 1 || steps.lastSub.Selected[0] != "keto" {
		t.Fatalf("unexpected submission %+v", steps.lastSub)
	}
	if body["next"] != "/next-step" {
		t.Fatalf("unexpected next %v", body["next"])
	}
}

func TestSubmitStepErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{"unknown step", fmt.Errorf("%w: nope", onboarding.ErrUnknownStep), http.StatusNotFound, ""},
		{"validation", &onboarding.ValidationError{Field: "rest_days", Err: onboarding.ErrTooManyRestDays}, http.StatusBadRequest, "rest_days"},
		{"store failure", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newUserApp("7", "sam")
			app.Post("/onboarding/steps/:step/", newOnboardingApp(&stubStepSubmitter{err: tc.err}).SubmitStep)

			resp, body := doJSON(t, app, http.MethodPost, "/onboarding/steps/rest-days/", `{"selected":["monday"]}`)
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			if tc.field != "" && body["field"] != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, body["field"])
			}
		})
	}
}

func TestBMIEndpoint(t *testing.T) {
	app := newUserApp("7", "sam")
	app.Post("/onboarding/bmi/", newOnboardingApp(&stubStepSubmitter{}).BMI)

	resp, body := doJSON(t, app, http.MethodPost, "/onboarding/bmi/", `{"height":180,"weight":81}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", resp.StatusCode, body)
	}
	if body["bmi"] != 25.0 {
		t.Fatalf("expected bmi 25, got %v", body["bmi"])
	}

	resp, body = doJSON(t, app, http.MethodPost, "/onboarding/bmi/", `{"height":0,"weight":81}`)
	if resp.StatusCode != http.StatusBadRequest || body["field"] != "bmi" {
		t.Fatalf("expected 400 on bmi, got %d %v", resp.StatusCode, body)
	}
}
