package scoring

import (
	"fmt"
	"math"

	"snaccscore/internal/models"
)

const (
	// ProteinGramsPerKg is the daily protein target per kilogram of body weight.
	ProteinGramsPerKg = 0.8

	CalorieBalancePoints = 2.0
	MaxDiversityPoints   = 2.0
	ExerciseGoalPoints   = 1.5
	ActiveCaloriePoints  = 1.5

	// ingredientsPerPoint unique ingredients earn one diversity point.
	ingredientsPerPoint = 10.0
)

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, name)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
	}
	return nil
}

// ProteinGoalPercentage returns how much of the weight based protein target
// the intake covers, as a percentage. The result is not capped.
func ProteinGoalPercentage(user models.User, dailyProteinIntake float64) (float64, error) {
	if math.IsNaN(user.Weight) || math.IsInf(user.Weight, 0) || user.Weight <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidInput, user.Weight)
	}
	if err := checkNonNegative("daily protein intake", dailyProteinIntake); err != nil {
		return 0, err
	}

	target := user.Weight * ProteinGramsPerKg
	percentage := dailyProteinIntake / target * 100
	if err := checkFinite("protein goal percentage", percentage); err != nil {
		return 0, err
	}
	return percentage, nil
}

// CalorieBalance awards CalorieBalancePoints when consumption is at or under target.
func CalorieBalance(caloriesConsumed, targetCalories float64) (float64, error) {
	if err := checkNonNegative("calories consumed", caloriesConsumed); err != nil {
		return 0, err
	}
	if err := checkNonNegative("target calories", targetCalories); err != nil {
		return 0, err
	}

	if caloriesConsumed-targetCalories <= 0 {
		return CalorieBalancePoints, nil
	}
	return 0, nil
}

// NutritionDiversity scores the number of distinct ingredients across all
// meals. Names are compared exactly, so "Egg" and "egg" are two ingredients.
func NutritionDiversity(mealLogs []models.MealLog) float64 {
	unique := make(map[string]struct{})
	for _, meal := range mealLogs {
		for _, ingredient := range meal.Ingredients {
			unique[ingredient] = struct{}{}
		}
	}
	return math.Min(float64(len(unique))/ingredientsPerPoint, MaxDiversityPoints)
}

// ExerciseGoal awards ExerciseGoalPoints when the minutes reach the target.
func ExerciseGoal(exerciseMinutes, targetMinutes int) (float64, error) {
	if exerciseMinutes < 0 {
		return 0, fmt.Errorf("%w: exercise minutes must not be negative", ErrInvalidInput)
	}
	if targetMinutes < 0 {
		return 0, fmt.Errorf("%w: target minutes must not be negative", ErrInvalidInput)
	}

	if exerciseMinutes >= targetMinutes {
		return ExerciseGoalPoints, nil
	}
	return 0, nil
}

// ActiveCalorieGoal awards ActiveCaloriePoints when the burn reaches the target.
func ActiveCalorieGoal(activeCalories, targetActiveCalories float64) (float64, error) {
	if err := checkNonNegative("active calories", activeCalories); err != nil {
		return 0, err
	}
	if err := checkNonNegative("target active calories", targetActiveCalories); err != nil {
		return 0, err
	}

	if activeCalories >= targetActiveCalories {
		return ActiveCaloriePoints, nil
	}
	return 0, nil
}
