package routes

import (
	"snaccscore/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterScoreRoutes(router *gin.Engine, scoreController *controllers.ScoreController) {
	router.POST("/calculate_protein_goal_percentage/", scoreController.CalculateProteinGoalPercentage)
	router.POST("/calculate_calorie_balance/", scoreController.CalculateCalorieBalance)
	router.POST("/calculate_nutrition_diversity_score/", scoreController.CalculateNutritionDiversityScore)
	router.POST("/calculate_exercise_goals/", scoreController.CalculateExerciseGoals)
	router.POST("/calculate_active_calorie_goals/", scoreController.CalculateActiveCalorieGoals)
	router.POST("/calculate_daily_snacc_score/", scoreController.CalculateDailySnaccScore)
	router.POST("/calculate_weekly_snacc_score/", scoreController.CalculateWeeklySnaccScore)
	router.POST("/calculate_day_snacc_score/", scoreController.CalculateDaySnaccScore)
}
