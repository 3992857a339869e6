package onboarding

import "strings"

type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Catalog is an ordered, fixed list of selectable options.
type Catalog []Option

// Resolve maps a submitted value to an option id. Ids match exactly; names
// match case-insensitively so older clients that posted display labels still
// resolve.
func (c Catalog) Resolve(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, opt := range c {
		if opt.ID == value {
			return opt.ID, true
		}
	}
	for _, opt := range c {
		if strings.EqualFold(opt.Name, value) {
			return opt.ID, true
		}
	}
	return "", false
}

func (c Catalog) Contains(id string) bool {
	for _, opt := range c {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Index returns the position of id, or -1.
func (c Catalog) Index(id string) int {
	for i, opt := range c {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, opt := range c {
		ids = append(ids, opt.ID)
	}
	return ids
}

var Goals = Catalog{
	{ID: "weight-loss", Name: "Lose Weight", Icon: "⚖️", Description: "Reduce body fat while maintaining muscle mass"},
	{ID: "muscle-gain", Name: "Build Muscle", Icon: "💪", Description: "Increase muscle mass and strength"},
	{ID: "get-lean", Name: "Get Lean", Icon: "🏃", Description: "Reduce body fat while maintaining athletic performance"},
	{ID: "maintain", Name: "Maintain Fitness", Icon: "🎯", Description: "Keep current physique and improve overall health"},
	{ID: "strength", Name: "Increase Strength", Icon: "🏋️", Description: "Focus on power and strength gains"},
	{ID: "endurance", Name: "Build Endurance", Icon: "🏃‍♀️", Description: "Improve stamina and cardiovascular fitness"},
	{ID: "flexibility", Name: "Improve Flexibility", Icon: "🧘", Description: "Enhance range of motion and reduce injury risk"},
	{ID: "sports", Name: "Sports Performance", Icon: "⚽", Description: "Enhance athletic abilities for specific sports"},
	{ID: "body-recomp", Name: "Body Recomposition", Icon: "🔄", Description: "Simultaneously build muscle and lose fat"},
	{ID: "powerlifting", Name: "Powerlifting", Icon: "🏋️", Description: "Focus on maximizing squat, bench press, and deadlift"},
	{ID: "calisthenics", Name: "Calisthenics", Icon: "🤸", Description: "Master bodyweight exercises and movements"},
	{ID: "general-health", Name: "General Health", Icon: "❤️", Description: "Improve overall wellness and quality of life"},
}

var DietSelections = Catalog{
	{ID: "no-diet", Name: "No Diet at all", Icon: "🚫"},
	{ID: "keto", Name: "Keto", Icon: "🥑"},
	{ID: "fasting", Name: "Intermittent Fasting", Icon: "⏳"},
	{ID: "gluten-free", Name: "Gluten Free", Icon: "🌾"},
	{ID: "raw-food", Name: "Raw Food", Icon: "🥦"},
	{ID: "bulking", Name: "Bulking", Icon: "💪"},
}

var DietPreferences = Catalog{
	{ID: "veg", Name: "Vegetarian", Icon: "🥦"},
	{ID: "non-veg", Name: "Non-Vegetarian", Icon: "🍗"},
	{ID: "eggitarian", Name: "Eggitarian", Icon: "🍳"},
	{ID: "mediterranean", Name: "Mediterranean", Icon: "🥗"},
	{ID: "vegan", Name: "Vegan", Icon: "🌱"},
	{ID: "detox", Name: "Detox Diet", Icon: "🍵"},
}

// CookingTimes is ordered from shortest to longest.
var CookingTimes = Catalog{
	{ID: "<10", Name: "Less than 10 minutes"},
	{ID: "10-20", Name: "10 - 20 minutes"},
	{ID: "20-30", Name: "20 - 30 minutes"},
	{ID: "30-45", Name: "30 - 45 minutes"},
	{ID: ">45", Name: "More than 45 minutes"},
}

var Weekdays = Catalog{
	{ID: "monday", Name: "Monday"},
	{ID: "tuesday", Name: "Tuesday"},
	{ID: "wednesday", Name: "Wednesday"},
	{ID: "thursday", Name: "Thursday"},
	{ID: "friday", Name: "Friday"},
	{ID: "saturday", Name: "Saturday"},
	{ID: "sunday", Name: "Sunday"},
}

var MealTypes = Catalog{
	{ID: "breakfast", Name: "Breakfast", Icon: "🍳", Description: "Start your day right"},
	{ID: "lunch", Name: "Lunch", Icon: "🥪", Description: "Midday nourishment"},
	{ID: "dinner", Name: "Dinner", Icon: "🍽️", Description: "Evening delight"},
	{ID: "snacks", Name: "Snacks", Icon: "🍎", Description: "Healthy bites"},
}

var ActivityLevels = Catalog{
	{ID: "sedentary", Name: "Sedentary", Icon: "🪑", Description: "Little or no exercise, desk job"},
	{ID: "lightly_active", Name: "Lightly Active", Icon: "🚶", Description: "Light exercise 1-3 days/week"},
	{ID: "moderately_active", Name: "Moderately Active", Icon: "🏃", Description: "Moderate exercise 3-5 days/week"},
	{ID: "very_active", Name: "Very Active", Icon: "💪", Description: "Hard exercise 6-7 days/week"},
	{ID: "extra_active", Name: "Extra Active", Icon: "🏋️", Description: "Hard exercise & physical job"},
}

var Difficulties = Catalog{
	{ID: "beginner", Name: "Beginner", Icon: "🌱", Description: "Perfect for those new to exercise or returning after a break"},
	{ID: "intermediate", Name: "Intermediate", Icon: "🌿", Description: "For those with some experience and looking to challenge themselves"},
	{ID: "advanced", Name: "Advanced", Icon: "🌳", Description: "Intensive workouts for experienced fitness enthusiasts"},
}

// NoEquipment cannot be combined with any other equipment option.
const NoEquipment = "none"

var Equipment = Catalog{
	{ID: "dumbbells", Name: "Dumbbells", Icon: "🏋️"},
	{ID: "barbell", Name: "Barbell & Plates", Icon: "🏋️"},
	{ID: "resistance-bands", Name: "Resistance Bands", Icon: "🟠"},
	{ID: "kettlebell", Name: "Kettlebell", Icon: "🔔"},
	{ID: "yoga-mat", Name: "Yoga Mat", Icon: "🧘"},
	{ID: "pull-up-bar", Name: "Pull-Up Bar", Icon: "🏗️"},
	{ID: "jump-rope", Name: "Jump Rope", Icon: "🤾"},
	{ID: "treadmill", Name: "Treadmill", Icon: "🏃"},
	{ID: "exercise-bike", Name: "Exercise Bike", Icon: "🚴"},
	{ID: NoEquipment, Name: "No Equipment (Bodyweight Only)", Icon: "🚫"},
}

var ExerciseRoutines = Catalog{
	{ID: "strength", Name: "Strength Training", Icon: "💪", Description: "Muscle Building & Toning"},
	{ID: "fat-loss", Name: "Fat Loss & Weight Loss", Icon: "🔥", Description: "HIIT & Cardio"},
	{ID: "flexibility", Name: "Flexibility & Mobility", Icon: "🧘", Description: "Yoga & Pilates"},
	{ID: "sports", Name: "Sports & Functional Fitness", Icon: "🏆"},
	{ID: "low-impact", Name: "Low-Impact Routines", Icon: "🚶", Description: "For Beginners & Recovery"},
}

var PainAreas = Catalog{
	{ID: "Knees", Name: "Knees"},
	{ID: "Shoulders", Name: "Shoulders"},
	{ID: "Back", Name: "Back"},
	{ID: "Ankles", Name: "Ankles"},
	{ID: "Hips", Name: "Hips"},
	{ID: "Neck", Name: "Neck"},
	{ID: "Wrists", Name: "Wrists"},
	{ID: "Elbows", Name: "Elbows"},
}

var Injuries = Catalog{
	{ID: "Muscle Strain", Name: "Muscle Strain"},
	{ID: "Ligament Tear", Name: "Ligament Tear"},
	{ID: "Fracture", Name: "Fracture"},
	{ID: "Tendonitis", Name: "Tendonitis"},
	{ID: "Dislocation", Name: "Dislocation"},
	{ID: "None", Name: "None"},
}

var Surgeries = Catalog{
	{ID: "Knee Surgery", Name: "Knee Surgery"},
	{ID: "Shoulder Surgery", Name: "Shoulder Surgery"},
	{ID: "Back Surgery", Name: "Back Surgery"},
	{ID: "Ankle Surgery", Name: "Ankle Surgery"},
	{ID: "Hip Replacement", Name: "Hip Replacement"},
	{ID: "None", Name: "None"},
}

var MotionLimitations = Catalog{
	{ID: "Difficulty Bending", Name: "Difficulty Bending"},
	{ID: "Limited Arm Movement", Name: "Limited Arm Movement"},
	{ID: "Restricted Neck Rotation", Name: "Restricted Neck Rotation"},
	{ID: "Limited Ankle Mobility", Name: "Limited Ankle Mobility"},
	{ID: "None", Name: "None"},
}

var MedicalConditions = Catalog{
	{ID: "Arthritis", Name: "Arthritis"},
	{ID: "Osteoporosis", Name: "Osteoporosis"},
	{ID: "Heart Disease", Name: "Heart Disease"},
	{ID: "Diabetes", Name: "Diabetes"},
	{ID: "Asthma", Name: "Asthma"},
	{ID: "Hypertension", Name: "Hypertension"},
	{ID: "None", Name: "None"},
}
