package services

import (
	"context"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"golang.org/x/sync/errgroup"
)

type profileViewer interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileView, error)
}

type mealPlanner interface {
	PlanFor(ctx context.Context, userID int64, date time.Time) (*models.UserMealPlan, error)
}

type workoutPlanner interface {
	ForUser(ctx context.Context, userID int64) (*models.UserWorkout, error)
}

type Dashboard struct {
	*ProfileView
	MealPlan *models.UserMealPlan `json:"meal_plan"`
	Workout  *models.UserWorkout  `json:"workout"`
}

type DashboardService struct {
	profiles profileViewer
	meals    mealPlanner
	workouts workoutPlanner
	now      func() time.Time
}

func NewDashboardService(profiles profileViewer, meals mealPlanner, workouts workoutPlanner) *DashboardService {
	return &DashboardService{profiles: profiles, meals: meals, workouts: workouts, now: time.Now}
}

// Load fetches every section concurrently. Any failure fails the whole
// dashboard.
func (s *DashboardService) Load(ctx context.Context, userID int64) (*Dashboard, error) {
	var dash Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		view, err := s.profiles.GetProfile(gctx, userID)
		dash.ProfileView = view
		return err
	})
	g.Go(func() error {
		plan, err := s.meals.PlanFor(gctx, userID, s.now())
		dash.MealPlan = plan
		return err
	})
	g.Go(func() error {
		workout, err := s.workouts.ForUser(gctx, userID)
		dash.Workout = workout
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
