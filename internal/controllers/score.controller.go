package controllers

import (
	"errors"
	"log"
	"net/http"

	"snaccscore/internal/metrics"
	"snaccscore/internal/models"
	"snaccscore/internal/scoring"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	metrics *metrics.Collector
}

func NewScoreController(collector *metrics.Collector) *ScoreController {
	return &ScoreController{metrics: collector}
}

func (sc *ScoreController) bindFailed(c *gin.Context, kind string, err error) {
	sc.metrics.ScoreRejected(kind)
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data",
		"error":   err.Error(),
	})
}

func (sc *ScoreController) scoreFailed(c *gin.Context, kind string, err error) {
	if errors.Is(err, scoring.ErrInvalidInput) {
		sc.metrics.ScoreRejected(kind)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid input",
			"error":   err.Error(),
		})
		return
	}

	log.Printf("Unexpected %s scoring error: %v", kind, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to calculate score",
		"error":   err.Error(),
	})
}

func (sc *ScoreController) scored(c *gin.Context, kind, message string, score float64) {
	sc.metrics.ScoreComputed(kind)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"data":    models.ScoreResponse{Score: score},
	})
}

// CalculateProteinGoalPercentage godoc
// @Summary Calculate protein goal percentage
// @Description Percentage of the daily protein target (0.8 g per kg of body weight) reached. Not capped at 100.
// @Tags score
// @Accept json
// @Produce json
// @Param request body models.ProteinGoalRequest true "User and daily protein intake in grams"
// @Success 200 {object} map[string]interface{} "Protein goal percentage calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_protein_goal_percentage/ [post]
func (sc *ScoreController) CalculateProteinGoalPercentage(c *gin.Context) {
	var req models.ProteinGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sc.bindFailed(c, "protein", err)
		return
	}

	percentage, err := scoring.ProteinGoalPercentage(req.User, *req.DailyProteinIntake)
	if err != nil {
		sc.scoreFailed(c, "protein", err)
		return
	}

	sc.scored(c, "protein", "Protein goal percentage calculated", percentage)
}

// CalculateCalorieBalance godoc
// @Summary Calculate calorie balance points
// @Description 2 points when calories consumed are at or under the target, otherwise 0
// @Tags score
// @Accept json
// @Produce json
// @Param request body models.CalorieBalanceRequest true "User, daily nutrition and target calories"
// @Success 200 {object} map[string]interface{} "Calorie balance calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_calorie_balance/ [post]
func (sc *ScoreController) CalculateCalorieBalance(c *gin.Context) {
	var req models.CalorieBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sc.bindFailed(c, "calorie_balance", err)
		return
	}

	points, err := scoring.CalorieBalance(req.Nutrition.Calories, *req.TargetCalories)
	if err != nil {
		sc.scoreFailed(c, "calorie_balance", err)
		return
	}

	sc.scored(c, "calorie_balance", "Calorie balance calculated", points)
}

// CalculateNutritionDiversityScore godoc
// @Summary Calculate nutrition diversity score
// @Description One point per 10 unique ingredients across the day's meals, capped at 2
// @Tags score
// @Accept json
// @Produce json
// @Param meal_logs body []models.MealLog true "Meal logs for one day"
// @Success 200 {object} map[string]interface{} "Nutrition diversity score calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_nutrition_diversity_score/ [post]
func (sc *ScoreController) CalculateNutritionDiversityScore(c *gin.Context) {
	var mealLogs []models.MealLog
	if err := c.ShouldBindJSON(&mealLogs); err != nil {
		sc.bindFailed(c, "diversity", err)
		return
	}

	sc.scored(c, "diversity", "Nutrition diversity score calculated", scoring.NutritionDiversity(mealLogs))
}

// CalculateExerciseGoals godoc
// @Summary Calculate exercise goal points
// @Description 1.5 points when exercise minutes reach the target, otherwise 0
// @Tags score
// @Accept json
// @Produce json
// @Param request body models.ExerciseGoalRequest true "Exercise log and target minutes"
// @Success 200 {object} map[string]interface{} "Exercise goals calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_exercise_goals/ [post]
func (sc *ScoreController) CalculateExerciseGoals(c *gin.Context) {
	var req models.ExerciseGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sc.bindFailed(c, "exercise", err)
		return
	}

	points, err := scoring.ExerciseGoal(req.ExerciseLog.ExerciseMinutes, *req.TargetMinutes)
	if err != nil {
		sc.scoreFailed(c, "exercise", err)
		return
	}

	sc.scored(c, "exercise", "Exercise goals calculated", points)
}

// CalculateActiveCalorieGoals godoc
// @Summary Calculate active calorie goal points
// @Description 1.5 points when active calories burned reach the target, otherwise 0
// @Tags score
// @Accept json
// @Produce json
// @Param request body models.ActiveCalorieGoalRequest true "Exercise log and target active calories"
// @Success 200 {object} map[string]interface{} "Active calorie goals calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_active_calorie_goals/ [post]
func (sc *ScoreController) CalculateActiveCalorieGoals(c *gin.Context) {
	var req models.ActiveCalorieGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sc.bindFailed(c, "active_calorie", err)
		return
	}

	points, err := scoring.ActiveCalorieGoal(req.ExerciseLog.ActiveCalories, *req.TargetActiveCalories)
	if err != nil {
		sc.scoreFailed(c, "active_calorie", err)
		return
	}

	sc.scored(c, "active_calorie", "Active calorie goals calculated", points)
}

// CalculateDailySnaccScore godoc
// @Summary Calculate the daily Snacc Score
// @Description Sum of the five sub-scores, unweighted
// @Tags score
// @Accept json
// @Produce json
// @Param request body models.DailyScoreRequest true "Sub-scores"
// @Success 200 {object} map[string]interface{} "Daily Snacc Score calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_daily_snacc_score/ [post]
func (sc *ScoreController) CalculateDailySnaccScore(c *gin.Context) {
	var req models.DailyScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sc.bindFailed(c, "daily", err)
		return
	}

	score, err := scoring.DailyScore(scoring.SubScores{
		ProteinPercentage:  *req.ProteinPercentage,
		CalorieBalance:     *req.CalorieBalance,
		NutritionDiversity: *req.NutritionDiversity,
		ExerciseGoals:      *req.ExerciseGoals,
		ActiveCalorieGoals: *req.ActiveCalorieGoals,
	})
	if err != nil {
		sc.scoreFailed(c, "daily", err)
		return
	}
	sc.metrics.ObserveDailyScore(score)

	sc.scored(c, "daily", "Daily Snacc Score calculated", score)
}

// CalculateWeeklySnaccScore godoc
// @Summary Calculate the weekly Snacc Score
// @Description Mean of the given daily scores, meant to be the last 7 days. Any non-empty list is accepted.
// @Tags score
// @Accept json
// @Produce json
// @Param daily_scores body []models.DailySnaccScore true "Daily scores"
// @Success 200 {object} map[string]interface{} "Weekly Snacc Score calculated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_weekly_snacc_score/ [post]
func (sc *ScoreController) CalculateWeeklySnaccScore(c *gin.Context) {
	var dailyScores []models.DailySnaccScore
	if err := c.ShouldBindJSON(&dailyScores); err != nil {
		sc.bindFailed(c, "weekly", err)
		return
	}

	score, err := scoring.WeeklyScore(dailyScores)
	if err != nil {
		sc.scoreFailed(c, "weekly", err)
		return
	}

	sc.scored(c, "weekly", "Weekly Snacc Score calculated", score)
}

// CalculateDaySnaccScore godoc
// @Summary Score a whole day
// @Description Runs every sub-scorer over one day of logs and returns the breakdown with the daily total. Nutrition totals default to the sum of the meals.
// @Tags score
// @Accept json
// @Produce json
// @Param request body scoring.DayInput true "User, meals, exercise and targets"
// @Success 200 {object} map[string]interface{} "Day scored"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /calculate_day_snacc_score/ [post]
func (sc *ScoreController) CalculateDaySnaccScore(c *gin.Context) {
	var in scoring.DayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		sc.bindFailed(c, "day", err)
		return
	}

	breakdown, err := scoring.ScoreDay(in)
	if err != nil {
		sc.scoreFailed(c, "day", err)
		return
	}
	sc.metrics.ObserveDailyScore(breakdown.Daily)
	sc.metrics.ScoreComputed("day")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Day scored successfully",
		"data":    breakdown,
	})
}
