package models

type ProteinGoalRequest struct {
	User               User     `json:"user"`
	DailyProteinIntake *float64 `json:"daily_protein_intake" binding:"required,gte=0" example:"64"`
}

type CalorieBalanceRequest struct {
	User           User      `json:"user"`
	Nutrition      Nutrition `json:"nutrition"`
	TargetCalories *float64  `json:"target_calories" binding:"required,gte=0" example:"2000"`
}

type ExerciseGoalRequest struct {
	ExerciseLog   *ExerciseLog `json:"exercise_log" binding:"required"`
	TargetMinutes *int         `json:"target_minutes" binding:"required,gte=0" example:"30"`
}

type ActiveCalorieGoalRequest struct {
	ExerciseLog          *ExerciseLog `json:"exercise_log" binding:"required"`
	TargetActiveCalories *float64     `json:"target_active_calories" binding:"required,gte=0" example:"300"`
}

// DailyScoreRequest carries already computed sub-scores.
type DailyScoreRequest struct {
	ProteinPercentage  *float64 `json:"protein_percentage" binding:"required" example:"100"`
	CalorieBalance     *float64 `json:"calorie_balance" binding:"required" example:"2"`
	NutritionDiversity *float64 `json:"nutrition_diversity" binding:"required" example:"0.3"`
	ExerciseGoals      *float64 `json:"exercise_goals" binding:"required" example:"1.5"`
	ActiveCalorieGoals *float64 `json:"active_calorie_goals" binding:"required" example:"1.5"`
}

type RecordScoreRequest struct {
	UserRef string   `json:"user_ref" binding:"required,max=128" example:"user-42"`
	Date    string   `json:"date" binding:"required" example:"2023-01-01"`
	Score   *float64 `json:"score" binding:"required" example:"105.3"`
}

// ScoreResponse is the data payload of the single value endpoints.
type ScoreResponse struct {
	Score float64 `json:"score" example:"105.3"`
}

type WeeklyScoreResponse struct {
	UserRef     string  `json:"user_ref" example:"user-42"`
	AsOf        string  `json:"as_of" example:"2023-01-07"`
	Score       float64 `json:"score" example:"105.3"`
	DaysCounted int     `json:"days_counted" example:"7"`
	Cached      bool    `json:"cached" example:"false"`
}
