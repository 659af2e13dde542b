package routes

import (
	controller "golang-medtrackbackend/controllers"

	"github.com/gin-gonic/gin"
)

func MedicationLogRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.POST("/medicationlog/take/:medication_id", controller.MarkTaken())
	incomingRoutes.POST("/medicationlog/undo/:medication_id", controller.UndoTaken())
	incomingRoutes.DELETE("/medicationlog/:log_id", controller.DeleteMedicationLog())
	incomingRoutes.GET("/medicationlogs/today", controller.GetTodaysLogs())
	incomingRoutes.GET("/medicationlogs/history/:medication_id", controller.GetMedicationLogs())
	incomingRoutes.GET("/dashboard", controller.GetDashboard())
	incomingRoutes.GET("/ws", controller.ChangesWS())
}
