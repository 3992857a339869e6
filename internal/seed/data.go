package seed

import "github.com/cufit/cufit-backend/internal/models"

func strPtr(v string) *string { return &v }

var mealNames = map[string][]string{
	"breakfast": {
		"Oatmeal with Berries", "Scrambled Eggs with Toast", "Greek Yogurt Parfait",
		"Breakfast Burrito", "Pancakes with Maple Syrup", "Avocado Toast with Eggs",
		"Smoothie Bowl", "Breakfast Sandwich", "French Toast", "Overnight Oats",
	},
	"lunch": {
		"Grilled Chicken Salad", "Turkey Club Sandwich", "Quinoa Buddha Bowl",
		"Tuna Wrap", "Vegetable Stir Fry", "Mediterranean Pasta",
		"Black Bean Burrito", "Poke Bowl", "Chicken Caesar Wrap", "Veggie Burger",
	},
	"dinner": {
		"Grilled Salmon", "Chicken Breast with Vegetables", "Beef Stir Fry",
		"Vegetable Curry", "Pasta Primavera", "Baked Chicken",
		"Fish Tacos", "Tofu Stir Fry", "Shrimp Scampi", "Eggplant Parmesan",
	},
	"snacks": {
		"Mixed Nuts", "Greek Yogurt", "Apple with Peanut Butter", "Protein Bar",
		"Hummus with Carrots", "Trail Mix", "Protein Smoothie", "Rice Cakes",
		"Fruit Salad", "Granola Bar",
	},
}

var recipeInstructions = []string{
	"1. Preheat oven to 350°F\n2. Mix ingredients\n3. Bake for **20 minutes**",
	"1. Chop vegetables\n2. Cook in pan\n3. Season to taste",
	"1. Boil water\n2. Add ingredients\n3. Simmer for **15 minutes**",
	"1. Prepare ingredients\n2. Mix in bowl\n3. Serve fresh",
}

var recipeLinks = []string{
	"https://example.com/recipe1",
	"https://example.com/recipe2",
	"https://example.com/recipe3",
	"https://example.com/recipe4",
}

var exercises = []models.Exercise{
	{Name: "Light Jogging", BodyPart: "Legs", Description: "Start with a light jog to warm up your muscles and increase heart rate.", ExerciseType: "Warm Up", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Keep a relaxed pace you can hold a conversation at.", Duration: 5, Sets: 1, Reps: 1},
	{Name: "Dynamic Stretching", BodyPart: "Full Body", Description: "Perform dynamic stretches to prepare your muscles for exercise.", ExerciseType: "Warm Up", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Swing arms and legs through their full range.", Duration: 5, Sets: 1, Reps: 10},
	{Name: "Jump Rope", BodyPart: "Legs", Description: "Skip rope to increase heart rate and improve coordination.", ExerciseType: "Warm Up", Difficulty: "Intermediate", ImpactLevel: "High", Instructions: "Stay on the balls of your feet.", Duration: 5, Sets: 3, Reps: 50},
	{Name: "High Knees", BodyPart: "Legs", Description: "Run in place while lifting knees high to warm up legs.", ExerciseType: "Warm Up", Difficulty: "Advanced", ImpactLevel: "High", Instructions: "Bring knees to waist level.", Duration: 5, Sets: 4, Reps: 30},
	{Name: "Bodyweight Squats", BodyPart: "Legs", Description: "Basic squats using only your body weight.", ExerciseType: "Main Exercise", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Keep knees behind toes.", Duration: 10, Sets: 3, Reps: 10},
	{Name: "Push-ups on Knees", BodyPart: "Chest", Description: "Modified push-ups performed on the knees.", ExerciseType: "Main Exercise", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Keep your back straight.", Duration: 10, Sets: 3, Reps: 8},
	{Name: "Glute Bridges", BodyPart: "Hips", Description: "Lift the hips from the floor to work the glutes.", ExerciseType: "Main Exercise", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Squeeze at the top for one second.", Duration: 10, Sets: 3, Reps: 12},
	{Name: "Planks", BodyPart: "Core", Description: "Hold a straight body position on forearms and toes.", ExerciseType: "Main Exercise", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Hold position for 30s.", Duration: 5, Sets: 3, Reps: 1},
	{Name: "Regular Push-ups", BodyPart: "Chest", Description: "Standard push-ups for chest and triceps.", ExerciseType: "Main Exercise", Difficulty: "Intermediate", ImpactLevel: "Low", Instructions: "Lower until your chest nearly touches the floor.", Duration: 10, Sets: 3, Reps: 12},
	{Name: "Dumbbell Rows", BodyPart: "Back", Description: "Single-arm rows with a dumbbell.", ExerciseType: "Main Exercise", Difficulty: "Intermediate", ImpactLevel: "Low", Instructions: "Pull the elbow past your torso.", Duration: 10, Sets: 3, Reps: 10},
	{Name: "Kettlebell Swings", BodyPart: "Hips", Description: "Hip hinge swing with a kettlebell.", ExerciseType: "Main Exercise", Difficulty: "Intermediate", ImpactLevel: "Medium", Instructions: "Drive with the hips, not the arms.", Duration: 10, Sets: 3, Reps: 15},
	{Name: "Lateral Raises", BodyPart: "Shoulders", Description: "Raise dumbbells to the side to shoulder height.", ExerciseType: "Main Exercise", Difficulty: "Intermediate", ImpactLevel: "Low", Instructions: "Lead with the elbows.", Duration: 10, Sets: 3, Reps: 12},
	{Name: "Box Jumps", BodyPart: "Legs", Description: "Explosive jumps onto a sturdy box.", ExerciseType: "Main Exercise", Difficulty: "Advanced", ImpactLevel: "High", Instructions: "Use your arms to generate momentum.", Duration: 10, Sets: 4, Reps: 8},
	{Name: "Plyometric Push-ups", BodyPart: "Chest", Description: "Explosive push-ups with a hand release.", ExerciseType: "Main Exercise", Difficulty: "Advanced", ImpactLevel: "High", Instructions: "Land softly with bent elbows.", Duration: 10, Sets: 3, Reps: 8},
	{Name: "Weighted Pull-ups", BodyPart: "Back", Description: "Pull-ups with added weight for increased difficulty.", ExerciseType: "Main Exercise", Difficulty: "Advanced", ImpactLevel: "Medium", Instructions: "Full hang at the bottom of each rep.", Duration: 10, Sets: 4, Reps: 6},
	{Name: "Static Stretching", BodyPart: "Full Body", Description: "Hold stretches to improve flexibility.", ExerciseType: "Cool Down", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Hold each stretch for 20 seconds.", Duration: 10, Sets: 1, Reps: 1},
	{Name: "Light Walking", BodyPart: "Legs", Description: "Walk slowly to bring the heart rate down.", ExerciseType: "Cool Down", Difficulty: "Beginner", ImpactLevel: "Low", Instructions: "Breathe deeply while walking.", Duration: 5, Sets: 1, Reps: 1},
	{Name: "Yoga Cool Down", BodyPart: "Full Body", Description: "Basic yoga poses to relax muscles and improve flexibility.", ExerciseType: "Cool Down", Difficulty: "Intermediate", ImpactLevel: "Low", Instructions: "Move slowly between poses.", Duration: 10, Sets: 1, Reps: 1},
	{Name: "Foam Rolling", BodyPart: "Full Body", Description: "Use a foam roller for myofascial release and recovery.", ExerciseType: "Cool Down", Difficulty: "Advanced", ImpactLevel: "Low", Instructions: "Pause on tender spots.", Duration: 15, Sets: 1, Reps: 1},
}

var masterWorkouts = []models.MasterWorkout{
	{Name: "Push-ups", Instructions: "Keep back straight", VideoURL: "https://youtu.be/zkU6Ok44_CI"},
	{Name: "Squats", Instructions: "Keep knees behind toes", VideoURL: "https://youtu.be/HFnSsLIB7a4"},
	{Name: "Plank", Instructions: "Hold position for 30s", VideoURL: "https://youtu.be/_lfR4sl0ZCE"},
	{Name: "Lunges", Instructions: "Keep your upper body straight", VideoURL: "https://youtu.be/QOVaHwm-Q6U"},
	{Name: "Jumping", Instructions: "Land softly on your feet", VideoURL: "https://youtu.be/AEMHRtLCpB8"},
	{Name: "Box Jumps", Instructions: "Use your arms to generate momentum", VideoURL: "https://youtu.be/52r_Ul0HMi4"},
	{Name: "Leg Press", Instructions: "Don't lock your knees at the top", VideoURL: "https://youtu.be/IZxyjW7MPJQ"},
	{Name: "Step-Ups", Instructions: "Push through your heel", VideoURL: "https://youtu.be/39dbQGkSpA8"},
	{Name: "Running", Instructions: "Maintain an upright posture", VideoURL: "https://youtu.be/bcY_10VaLNQ"},
	{Name: "Jump Squats", Instructions: "Explode upwards with power", VideoURL: "https://youtu.be/A1zB6Z2n6rE"},
	{Name: "Plyometric Training", Instructions: "Focus on explosive movements", VideoURL: "https://youtu.be/kDq1NwZhhMM"},
	{Name: "Wall Sits", Instructions: "Keep your back against the wall", VideoURL: "https://youtu.be/-cdph8hv0O0"},
	{Name: "High Knees", Instructions: "Bring knees to waist level", VideoURL: "https://youtu.be/1BZMUbZCRbc"},
	{Name: "Burpees", Instructions: "Explode upwards with a jump", VideoURL: "https://youtu.be/qLBImHhCXSw"},
}

var campusMeals = []models.CampusMeal{
	{Name: "Grilled Chicken Bowl", Location: "Student Union Food Court", Price: 9},
	{Name: "Veggie Wrap", Location: "Library Cafe", Price: 7},
	{Name: "Poke Bowl", Location: "East Campus Dining Hall", Price: 12},
	{Name: "Protein Smoothie", Location: "Recreation Center Juice Bar", Price: 6},
	{Name: "Salad Bar", Location: "West Campus Dining Hall", Price: 8},
	{Name: "Turkey Sandwich", Location: "Engineering Building Kiosk", Price: 7},
}

var demoPlans = []models.Plan{
	{Name: "Basic", Description: strPtr("Personalised meal and workout plans."), Price: 4.99, Currency: "usd", Interval: "month", ProductID: "prod_demo_basic", PriceID: "price_demo_basic"},
	{Name: "Premium", Description: strPtr("Everything in Basic plus the fitness assistant."), Price: 9.99, Currency: "usd", Interval: "month", ProductID: "prod_demo_premium", PriceID: "price_demo_premium"},
}
