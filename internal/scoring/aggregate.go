package scoring

import (
	"fmt"

	"snaccscore/internal/models"
)

// SubScores are the five independently computed parts of a daily score.
type SubScores struct {
	ProteinPercentage  float64 `json:"protein_percentage" yaml:"protein_percentage"`
	CalorieBalance     float64 `json:"calorie_balance" yaml:"calorie_balance"`
	NutritionDiversity float64 `json:"nutrition_diversity" yaml:"nutrition_diversity"`
	ExerciseGoals      float64 `json:"exercise_goals" yaml:"exercise_goals"`
	ActiveCalorieGoals float64 `json:"active_calorie_goals" yaml:"active_calorie_goals"`
}

// DailyScore sums the sub-scores without weighting. The protein percentage
// is added as is, so it dominates the total at high intake. Sign is not
// checked, but a sub-score or total that is not finite is rejected.
func DailyScore(s SubScores) (float64, error) {
	parts := []struct {
		name  string
		value float64
	}{
		{"protein percentage", s.ProteinPercentage},
		{"calorie balance", s.CalorieBalance},
		{"nutrition diversity", s.NutritionDiversity},
		{"exercise goals", s.ExerciseGoals},
		{"active calorie goals", s.ActiveCalorieGoals},
	}

	var total float64
	for _, p := range parts {
		if err := checkFinite(p.name, p.value); err != nil {
			return 0, err
		}
		total += p.value
	}
	if err := checkFinite("daily score", total); err != nil {
		return 0, err
	}
	return total, nil
}

// WeeklyScore is the arithmetic mean of the given daily scores. Any number of
// days is accepted, not only seven.
func WeeklyScore(dailyScores []models.DailySnaccScore) (float64, error) {
	if len(dailyScores) == 0 {
		return 0, fmt.Errorf("%w: at least one daily score is required", ErrInvalidInput)
	}

	var total float64
	for _, s := range dailyScores {
		if err := checkFinite("score of "+s.Date, s.Score); err != nil {
			return 0, err
		}
		total += s.Score
	}

	mean := total / float64(len(dailyScores))
	if err := checkFinite("weekly score", mean); err != nil {
		return 0, err
	}
	return mean, nil
}
