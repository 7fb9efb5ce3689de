package routes

import (
	"snaccscore/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHistoryRoutes(router *gin.Engine, historyController *controllers.HistoryController) {
	historyRoutes := router.Group("/history")
	{
		historyRoutes.POST("/scores", historyController.RecordDailyScore)
		historyRoutes.GET("/:user_ref/scores", historyController.GetDailyScores)
		historyRoutes.GET("/:user_ref/scores/:date", historyController.GetDailyScore)
		historyRoutes.DELETE("/:user_ref/scores/:date", historyController.DeleteDailyScore)
		historyRoutes.GET("/:user_ref/weekly", historyController.GetWeeklyScore)
	}
}
