package services

import (
	"context"
	"encoding/json"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
)

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type ProfileStore interface {
	profileReader
	UpdatePartial(ctx context.Context, userID int64, patch models.ProfilePatch) (*models.UserProfile, error)
}

type ProfileService struct {
	flow     *onboarding.Flow
	profiles ProfileStore
}

func NewProfileService(flow *onboarding.Flow, profiles ProfileStore) *ProfileService {
	return &ProfileService{flow: flow, profiles: profiles}
}

type ProfileView struct {
	Profile            *models.UserProfile `json:"profile"`
	Display            map[string]string   `json:"display"`
	Next               string              `json:"next"`
	OnboardingComplete bool                `json:"onboarding_complete"`
}

type StepResult struct {
	Profile            *models.UserProfile `json:"profile"`
	Next               string              `json:"next"`
	OnboardingComplete bool                `json:"onboarding_complete"`
}

func (s *ProfileService) Flow() *onboarding.Flow { return s.flow }

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*ProfileView, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(profile), nil
}

func (s *ProfileService) view(profile *models.UserProfile) *ProfileView {
	step := ""
	if profile.OnboardingStep != nil {
		step = *profile.OnboardingStep
	}
	return &ProfileView{
		Profile:            profile,
		Display:            s.flow.Display(*profile),
		Next:               s.flow.Resume(step, profile.OnboardingComplete),
		OnboardingComplete: profile.OnboardingComplete,
	}
}

// SubmitStep validates one step, writes its fields in a single update and
// reports where the client goes next. Editing is inferred from the persisted
// onboarding_complete flag when the request does not say so.
func (s *ProfileService) SubmitStep(ctx context.Context, userID int64, stepID string, sub onboarding.Submission) (*StepResult, error) {
	step, ok := s.flow.Step(stepID)
	if !ok {
		return nil, onboarding.ErrUnknownStep
	}

	patch, err := step.Apply(sub)
	if err != nil {
		return nil, err
	}

	current, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	editing := sub.Editing || current.OnboardingComplete

	if !editing {
		patch.OnboardingStep = &step.ID
		if s.flow.IsLast(step.ID) {
			complete := true
			patch.OnboardingComplete = &complete
		}
	}

	profile, err := s.profiles.UpdatePartial(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	return &StepResult{
		Profile:            profile,
		Next:               s.flow.Next(step.ID, editing),
		OnboardingComplete: profile.OnboardingComplete,
	}, nil
}

// UpdateFields applies a flat field update. Every known field is validated
// against its step before anything is written.
func (s *ProfileService) UpdateFields(ctx context.Context, userID int64, fields map[string]json.RawMessage) (*models.UserProfile, error) {
	patch, err := s.flow.PatchFromFields(fields)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, ErrInvalidInput
	}
	return s.profiles.UpdatePartial(ctx, userID, patch)
}
