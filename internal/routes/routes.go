package routes

import (
	"fmt"

	"github.com/cufit/cufit-backend/internal/config"
	"github.com/cufit/cufit-backend/internal/handlers"
	"github.com/cufit/cufit-backend/internal/middleware"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/cufit/cufit-backend/internal/repository"
	"github.com/cufit/cufit-backend/internal/services"
	chatws "github.com/cufit/cufit-backend/internal/websocket"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires every handler. assistant may be nil, in which case the
// chatbot routes answer 503.
func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, assistant services.Assistant) error {
	userRepo := repository.NewUserRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	mealRepo := repository.NewMealRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	billingRepo := repository.NewBillingRepository(db)

	var provider services.PaymentProvider
	if cfg.BillingEnabled() {
		if cfg.BillingSuccessURL == "" || cfg.BillingCancelURL == "" {
			return fmt.Errorf("BILLING_SUCCESS_URL and BILLING_CANCEL_URL are required when STRIPE_SECRET_KEY is set")
		}
		provider = services.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	}
	mailer := services.NewResendMailer(cfg.ResendAPIKey, cfg.FromEmail)

	flow := onboarding.DefaultFlow()
	profileService := services.NewProfileService(flow, userProfileRepo)
	mealService := services.NewMealService(db, mealRepo, userProfileRepo)
	workoutService := services.NewWorkoutService(exerciseRepo, userProfileRepo)
	dashboardService := services.NewDashboardService(profileService, mealService, workoutService)
	billingService := services.NewBillingService(
		db,
		billingRepo,
		userRepo,
		provider,
		cfg.BillingSuccessURL,
		cfg.BillingCancelURL,
	)
	chatbotService := services.NewChatbotService(assistant, userRepo, userProfileRepo, mealRepo, exerciseRepo)
	chatHub := chatws.NewHub()
	go chatHub.Run()

	authHandler := handlers.NewAuthHandler(db, userRepo, userProfileRepo, mailer, cfg.JWTSecret, cfg.JWTTTL)
	profileHandler := handlers.NewProfileHandler(profileService)
	onboardingHandler := handlers.NewOnboardingHandler(flow, profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	mealHandler := handlers.NewMealHandler(mealService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService, profileService)
	billingHandler := handlers.NewBillingHandler(billingService)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, chatHub, cfg.JWTSecret)

	authRequired := middleware.AuthRequired(cfg.JWTSecret)

	app.Post("/signup/", authHandler.Signup)
	app.Post("/login/", authHandler.Login)
	app.Get("/auth/config/", authHandler.Config)

	app.Get("/billing/plans/", billingHandler.ListPlans)
	app.Post("/billing/webhook/", billingHandler.Webhook)

	app.Use("/chatbot/ws", chatbotHandler.WebSocketAuth)
	app.Get("/chatbot/ws", websocket.New(chatbotHandler.HandleWebSocket))

	app.Get("/get-profile/", authRequired, profileHandler.GetProfile)
	app.Post("/update-profile/", authRequired, profileHandler.UpdateProfile)

	onboardingGroup := app.Group("/onboarding", authRequired)
	onboardingGroup.Get("/flow/", onboardingHandler.Flow)
	onboardingGroup.Get("/edit-hub/", onboardingHandler.EditHub)
	onboardingGroup.Post("/steps/:step/", onboardingHandler.SubmitStep)
	onboardingGroup.Post("/bmi/", onboardingHandler.BMI)

	app.Get("/dashboard/", authRequired, dashboardHandler.Get)

	app.Get("/meals/api/user-meal-plan/", authRequired, mealHandler.UserMealPlan)
	app.Get("/meals/api/meal-plans/", authRequired, mealHandler.ListRecipes)
	app.Get("/meal/", authRequired, mealHandler.CampusMeals)

	app.Get("/workout/api/exercises/", authRequired, workoutHandler.ListExercises)
	app.Get("/workout/api/master-workouts/", authRequired, workoutHandler.MasterWorkouts)
	app.Get("/workout/api/user-workout/", authRequired, workoutHandler.UserWorkout)
	app.Post("/workout/api/update-exercise-routine/", authRequired, workoutHandler.UpdateExerciseRoutine)
	app.Post("/workout/api/save-equipment/", authRequired, workoutHandler.SaveEquipment)
	app.Post("/workout/api/update-stretching/", authRequired, workoutHandler.UpdateStretching)

	app.Post("/billing/checkout-session/", authRequired, billingHandler.CheckoutSession)
	app.Post("/chatbot/", authRequired, chatbotHandler.Chat)

	registerCompatRoutes(app, authRequired, profileHandler, workoutHandler)
	return registerDocsRoutes(app, cfg)
}

const compatRoutePrefix = "compat."

// registerCompatRoutes keeps paths older clients still call.
func registerCompatRoutes(
	app *fiber.App,
	authRequired fiber.Handler,
	profileHandler *handlers.ProfileHandler,
	workoutHandler *handlers.WorkoutHandler,
) {
	app.Get("/workout/get-profile/",
		middleware.Deprecated("/get-profile/"), authRequired, profileHandler.GetProfile).Name(compatRoutePrefix + "get-profile")
	app.Post("/workout/api/update-stretching-preference/",
		middleware.Deprecated("/workout/api/update-stretching/"), authRequired, workoutHandler.UpdateStretching).Name(compatRoutePrefix + "update-stretching")
	app.Post("/exercise-difficulty/",
		middleware.Deprecated("/onboarding/steps/exercise-difficulty/"), authRequired, workoutHandler.ExerciseDifficulty).Name(compatRoutePrefix + "exercise-difficulty")
	app.Get("/api/user-workout/",
		middleware.Deprecated("/workout/api/user-workout/"), authRequired, workoutHandler.UserWorkout).Name(compatRoutePrefix + "user-workout")
}
