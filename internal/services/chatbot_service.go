package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/repository"
)

const (
	WelcomeMessage  = "Welcome to CUFITBot! 💪 How can I assist you today with your fitness journey?"
	FallbackReply   = "Sorry, I couldn't generate a response."
	MaxChatHistory  = 20
	chatToolResults = 5

	ToolGetMeals     = "get_meals"
	ToolGetExercises = "get_exercises"
)

const chatbotInstruction = "You are CUFITBot, an AI assistant that helps users with fitness, meal plans, and workouts. " +
	"Only provide information from CUFIT's database. " +
	"You must only call 'get_meals' using the provided 'diet_selection', 'goal_selection', and 'diet_preference' values. " +
	"You can retrieve meals, workouts, and exercise details for users. " +
	"If a user asks for a workout suggestion, call the 'get_exercises' tool with the correct difficulty level (Beginner, Intermediate, or Advanced). " +
	"Avoid any off-topic discussions. If asked something unrelated, politely decline. " +
	"Do not reveal or access any other user's data under any circumstance."

type Conversation struct {
	System  string
	History []models.ChatMessage
	Message string
}

// ToolExecutor runs a named tool call made by the model.
type ToolExecutor interface {
	Call(ctx context.Context, name string, args map[string]any) (string, error)
}

type Assistant interface {
	Reply(ctx context.Context, conv Conversation, tools ToolExecutor) (string, error)
}

type chatUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type chatMealLister interface {
	ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]models.MealRecipe, error)
}

type chatExerciseLister interface {
	List(ctx context.Context, filter repository.ExerciseFilter) ([]models.Exercise, error)
}

type ChatbotService struct {
	assistant Assistant
	users     chatUserReader
	profiles  profileReader
	meals     chatMealLister
	exercises chatExerciseLister
}

func NewChatbotService(
	assistant Assistant,
	users chatUserReader,
	profiles profileReader,
	meals chatMealLister,
	exercises chatExerciseLister,
) *ChatbotService {
	return &ChatbotService{
		assistant: assistant,
		users:     users,
		profiles:  profiles,
		meals:     meals,
		exercises: exercises,
	}
}

func (s *ChatbotService) Enabled() bool {
	return s != nil && s.assistant != nil
}

// Reply answers one user message given the transcript so far. The transcript
// is owned by the caller; only its most recent turns are sent to the model.
func (s *ChatbotService) Reply(ctx context.Context, userID int64, message string, history []models.ChatMessage) (string, error) {
	if !s.Enabled() {
		return "", ErrUnavailable
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrInvalidInput
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	reply, err := s.assistant.Reply(ctx, Conversation{
		System:  SystemInstruction(user.Username, profile),
		History: trimHistory(history),
		Message: message,
	}, &chatTools{profile: profile, meals: s.meals, exercises: s.exercises})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

// SystemInstruction personalises the bot with the caller's own profile.
func SystemInstruction(username string, profile *models.UserProfile) string {
	goals := "N/A"
	if profile.GoalSelection != nil && len(*profile.GoalSelection) > 0 {
		goals = strings.Join(*profile.GoalSelection, ", ")
	}
	difficulty := "Beginner"
	if profile.ExerciseDifficulty != nil && *profile.ExerciseDifficulty != "" {
		difficulty = *profile.ExerciseDifficulty
	}

	var b strings.Builder
	b.WriteString(chatbotInstruction)
	b.WriteString("\n\nYou are talking to ")
	b.WriteString(username)
	b.WriteString(".\nFitness goal: ")
	b.WriteString(goals)
	b.WriteString("\nDiet: ")
	b.WriteString(orNA(profile.DietSelection))
	b.WriteString(" / ")
	b.WriteString(orNA(profile.DietPreference))
	b.WriteString("\nExercise level: ")
	b.WriteString(difficulty)
	return b.String()
}

func orNA(value *string) string {
	if value == nil || *value == "" {
		return "N/A"
	}
	return *value
}

func trimHistory(history []models.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(history))
	for _, msg := range history {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		if msg.Role != models.ChatRoleUser && msg.Role != models.ChatRoleAssistant {
			continue
		}
		out = append(out, msg)
	}
	if len(out) > MaxChatHistory {
		out = out[len(out)-MaxChatHistory:]
	}
	// The model only accepts a history that opens with a user turn.
	for len(out) > 0 && out[0].Role != models.ChatRoleUser {
		out = out[1:]
	}
	return out
}

// chatTools answers tool calls from the catalog, scoped to one profile.
type chatTools struct {
	profile   *models.UserProfile
	meals     chatMealLister
	exercises chatExerciseLister
}

func (t *chatTools) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case ToolGetMeals:
		return t.getMeals(ctx, args)
	case ToolGetExercises:
		return t.getExercises(ctx, args)
	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
}

func (t *chatTools) getMeals(ctx context.Context, args map[string]any) (string, error) {
	filter := repository.RecipeFilter{
		DietSelection:  stringArg(args, "diet_selection", orEmpty(t.profile.DietSelection)),
		DietPreference: stringArg(args, "diet_preference", orEmpty(t.profile.DietPreference)),
		MealType:       strings.ToLower(stringArg(args, "meal_type", "")),
		Limit:          chatToolResults,
	}
	recipes, err := t.meals.ListRecipes(ctx, filter)
	if err != nil {
		return "", err
	}
	if len(recipes) == 0 {
		return "No meals found based on your preferences.", nil
	}

	var b strings.Builder
	b.WriteString("Here are some meal suggestions:")
	for _, r := range recipes {
		fmt.Fprintf(&b, "\n- %s (%s, %d cal)", r.Name, r.MealType, r.Calories)
	}
	return b.String(), nil
}

func (t *chatTools) getExercises(ctx context.Context, args map[string]any) (string, error) {
	filter := repository.ExerciseFilter{
		Difficulty:   stringArg(args, "difficulty", "Beginner"),
		ImpactLevel:  stringArg(args, "impact_level", "Low"),
		ExcludeNames: RestrictedFor(t.profile),
		Limit:        chatToolResults,
	}
	exercises, err := t.exercises.List(ctx, filter)
	if err != nil {
		return "", err
	}
	if len(exercises) == 0 {
		return "No matching exercises found for your profile.", nil
	}

	lines := make([]string, 0, len(exercises))
	for _, e := range exercises {
		lines = append(lines, fmt.Sprintf("- %s (%s, %s, %s)\nInstructions: %s", e.Name, e.BodyPart, e.Difficulty, e.ImpactLevel, e.Instructions))
	}
	return strings.Join(lines, "\n"), nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
