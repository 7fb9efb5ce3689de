package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"snaccscore/internal/cache"
	"snaccscore/internal/metrics"
	"snaccscore/internal/models"
	"snaccscore/internal/repository"
	"snaccscore/internal/scoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// weekDays is the length of the weekly window, as-of day included.
const weekDays = 7

type HistoryController struct {
	repo    repository.ScoreRepository
	cache   cache.WeeklyCache
	metrics *metrics.Collector
	now     func() time.Time
}

func NewHistoryController(repo repository.ScoreRepository, weeklyCache cache.WeeklyCache, collector *metrics.Collector) *HistoryController {
	if weeklyCache == nil {
		weeklyCache = cache.NoopCache{}
	}
	return &HistoryController{
		repo:    repo,
		cache:   weeklyCache,
		metrics: collector,
		now:     time.Now,
	}
}

func (hc *HistoryController) today() time.Time {
	y, m, d := hc.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseDate reads an optional YYYY-MM-DD value, falling back to def when empty.
func parseDate(value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	return time.Parse(models.DateLayout, value)
}

func invalidDate(c *gin.Context, value string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid date",
		"error":   "Date must use the YYYY-MM-DD format, got " + value,
	})
}

// RecordDailyScore godoc
// @Summary Record a daily score
// @Description Store the daily Snacc Score of a user for one calendar day, replacing any score already stored for that day
// @Tags history
// @Accept json
// @Produce json
// @Param request body models.RecordScoreRequest true "User reference, date and score"
// @Success 201 {object} map[string]interface{} "Daily score recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to record daily score"
// @Router /history/scores [post]
func (hc *HistoryController) RecordDailyScore(c *gin.Context) {
	var req models.RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		invalidDate(c, req.Date)
		return
	}

	record := models.ScoreRecord{
		UserRef:   req.UserRef,
		ScoreDate: date,
		Score:     *req.Score,
	}
	if err := hc.repo.Upsert(&record); err != nil {
		log.Printf("Failed to store score for %s on %s: %v", req.UserRef, req.Date, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to record daily score",
			"error":   err.Error(),
		})
		return
	}

	if err := hc.cache.InvalidateUser(c.Request.Context(), req.UserRef); err != nil {
		log.Printf("Failed to invalidate weekly cache for %s: %v", req.UserRef, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Daily score recorded successfully",
		"data":    record.Daily(),
	})
}

// GetDailyScores godoc
// @Summary List daily scores
// @Description List stored daily scores of a user between two dates, inclusive. Defaults to the last 7 days.
// @Tags history
// @Produce json
// @Param user_ref path string true "User reference"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Daily scores retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve daily scores"
// @Router /history/{user_ref}/scores [get]
func (hc *HistoryController) GetDailyScores(c *gin.Context) {
	userRef := c.Param("user_ref")

	to, err := parseDate(c.Query("to"), hc.today())
	if err != nil {
		invalidDate(c, c.Query("to"))
		return
	}
	from, err := parseDate(c.Query("from"), to.AddDate(0, 0, -(weekDays - 1)))
	if err != nil {
		invalidDate(c, c.Query("from"))
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date range",
			"error":   "from must not be after to",
		})
		return
	}

	records, err := hc.repo.FindByUserRefAndDateRange(userRef, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve daily scores",
			"error":   err.Error(),
		})
		return
	}

	scores := make([]models.DailySnaccScore, 0, len(records))
	for _, r := range records {
		scores = append(scores, r.Daily())
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily scores retrieved successfully",
		"data":    scores,
	})
}

// GetWeeklyScore godoc
// @Summary Get the weekly Snacc Score
// @Description Mean of the stored daily scores in the 7 days ending on as_of. Days without a score are skipped, so fewer than 7 days may be averaged.
// @Tags history
// @Produce json
// @Param user_ref path string true "User reference"
// @Param as_of query string false "Last day of the week (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Weekly score calculated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "No daily scores in this week"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve daily scores"
// @Router /history/{user_ref}/weekly [get]
func (hc *HistoryController) GetWeeklyScore(c *gin.Context) {
	userRef := c.Param("user_ref")
	ctx := c.Request.Context()

	asOf, err := parseDate(c.Query("as_of"), hc.today())
	if err != nil {
		invalidDate(c, c.Query("as_of"))
		return
	}
	asOfKey := asOf.Format(models.DateLayout)

	// Read the version before the database. A score recorded in between
	// bumps it and orphans what this request stores.
	version, err := hc.cache.UserVersion(ctx, userRef)
	useCache := err == nil
	if err != nil {
		log.Printf("Weekly cache version lookup failed for %s: %v", userRef, err)
	}

	var (
		entry *cache.WeeklyEntry
		found bool
	)
	if useCache {
		entry, found, err = hc.cache.GetWeekly(ctx, userRef, asOfKey, version)
		if err != nil {
			log.Printf("Weekly cache lookup failed for %s: %v", userRef, err)
		}
	}
	if found {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Weekly score calculated successfully",
			"data": models.WeeklyScoreResponse{
				UserRef:     userRef,
				AsOf:        asOfKey,
				Score:       entry.Score,
				DaysCounted: entry.DaysCounted,
				Cached:      true,
			},
		})
		return
	}

	records, err := hc.repo.FindByUserRefAndDateRange(userRef, asOf.AddDate(0, 0, -(weekDays-1)), asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve daily scores",
			"error":   err.Error(),
		})
		return
	}

	scores := make([]models.DailySnaccScore, 0, len(records))
	for _, r := range records {
		scores = append(scores, r.Daily())
	}

	if len(scores) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No daily scores in this week",
			"error":   "No daily score is stored for " + userRef + " in the 7 days ending " + asOfKey,
		})
		return
	}

	weekly, err := scoring.WeeklyScore(scores)
	if err != nil {
		log.Printf("Weekly score of %s as of %s failed: %v", userRef, asOfKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to calculate weekly score",
			"error":   err.Error(),
		})
		return
	}
	hc.metrics.ScoreComputed("weekly")

	if useCache {
		if err := hc.cache.StoreWeekly(ctx, userRef, asOfKey, version, cache.WeeklyEntry{Score: weekly, DaysCounted: len(scores)}); err != nil {
			log.Printf("Failed to cache weekly score for %s: %v", userRef, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weekly score calculated successfully",
		"data": models.WeeklyScoreResponse{
			UserRef:     userRef,
			AsOf:        asOfKey,
			Score:       weekly,
			DaysCounted: len(scores),
		},
	})
}

// GetDailyScore godoc
// @Summary Get a daily score
// @Description Retrieve the stored score of a user for one day
// @Tags history
// @Produce json
// @Param user_ref path string true "User reference"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Daily score retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "Daily score not found"
// @Router /history/{user_ref}/scores/{date} [get]
func (hc *HistoryController) GetDailyScore(c *gin.Context) {
	userRef := c.Param("user_ref")

	date, err := time.Parse(models.DateLayout, c.Param("date"))
	if err != nil {
		invalidDate(c, c.Param("date"))
		return
	}

	record, err := hc.repo.FindByUserRefAndDate(userRef, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Daily score not found",
				"error":   "No score is stored for this day",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve daily score",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily score retrieved successfully",
		"data":    record.Daily(),
	})
}

// DeleteDailyScore godoc
// @Summary Delete a daily score
// @Description Remove the stored score of a user for one day
// @Tags history
// @Produce json
// @Param user_ref path string true "User reference"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Daily score deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "Daily score not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete daily score"
// @Router /history/{user_ref}/scores/{date} [delete]
func (hc *HistoryController) DeleteDailyScore(c *gin.Context) {
	userRef := c.Param("user_ref")

	date, err := time.Parse(models.DateLayout, c.Param("date"))
	if err != nil {
		invalidDate(c, c.Param("date"))
		return
	}

	if err := hc.repo.DeleteByUserRefAndDate(userRef, date); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Daily score not found",
				"error":   "No score is stored for this day",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete daily score",
			"error":   err.Error(),
		})
		return
	}

	if err := hc.cache.InvalidateUser(c.Request.Context(), userRef); err != nil {
		log.Printf("Failed to invalidate weekly cache for %s: %v", userRef, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily score deleted successfully",
		"data":    nil,
	})
}
