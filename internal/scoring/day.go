package scoring

import (
	"fmt"

	"snaccscore/internal/models"
)

// Targets are the user's daily goals.
type Targets struct {
	Calories        float64 `json:"calories" yaml:"calories" binding:"gte=0" example:"2000"`
	ExerciseMinutes int     `json:"exercise_minutes" yaml:"exercise_minutes" binding:"gte=0" example:"30"`
	ActiveCalories  float64 `json:"active_calories" yaml:"active_calories" binding:"gte=0" example:"300"`
}

// DayInput is everything logged for one day. When Nutrition is nil the daily
// totals are summed from the meals.
type DayInput struct {
	User      models.User        `json:"user" yaml:"user"`
	Meals     []models.MealLog   `json:"meals" yaml:"meals" binding:"dive"`
	Nutrition *models.Nutrition  `json:"nutrition,omitempty" yaml:"nutrition,omitempty"`
	Exercise  models.ExerciseLog `json:"exercise" yaml:"exercise"`
	Targets   Targets            `json:"targets" yaml:"targets"`
}

// Breakdown is a scored day.
type Breakdown struct {
	SubScores `yaml:",inline"`
	Nutrition models.Nutrition `json:"nutrition" yaml:"nutrition"`
	Daily     float64          `json:"daily_score" yaml:"daily_score"`
}

// TotalNutrition sums the nutrition of every meal.
func TotalNutrition(mealLogs []models.MealLog) models.Nutrition {
	var total models.Nutrition
	for _, meal := range mealLogs {
		total = total.Add(meal.Nutrition)
	}
	return total
}

// ScoreDay runs every sub-scorer for the day and combines them. The first
// invalid input aborts the whole computation.
func ScoreDay(in DayInput) (Breakdown, error) {
	nutrition := TotalNutrition(in.Meals)
	if in.Nutrition != nil {
		nutrition = *in.Nutrition
	}

	var (
		s   SubScores
		err error
	)
	if s.ProteinPercentage, err = ProteinGoalPercentage(in.User, nutrition.ProteinG); err != nil {
		return Breakdown{}, fmt.Errorf("protein goal: %w", err)
	}
	if s.CalorieBalance, err = CalorieBalance(nutrition.Calories, in.Targets.Calories); err != nil {
		return Breakdown{}, fmt.Errorf("calorie balance: %w", err)
	}
	s.NutritionDiversity = NutritionDiversity(in.Meals)
	if s.ExerciseGoals, err = ExerciseGoal(in.Exercise.ExerciseMinutes, in.Targets.ExerciseMinutes); err != nil {
		return Breakdown{}, fmt.Errorf("exercise goal: %w", err)
	}
	if s.ActiveCalorieGoals, err = ActiveCalorieGoal(in.Exercise.ActiveCalories, in.Targets.ActiveCalories); err != nil {
		return Breakdown{}, fmt.Errorf("active calorie goal: %w", err)
	}

	daily, err := DailyScore(s)
	if err != nil {
		return Breakdown{}, err
	}

	return Breakdown{
		SubScores: s,
		Nutrition: nutrition,
		Daily:     daily,
	}, nil
}
