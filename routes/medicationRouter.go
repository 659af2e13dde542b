package routes

import (
	controller "golang-medtrackbackend/controllers"

	"github.com/gin-gonic/gin"
)

func MedicationRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.POST("/medication", controller.CreateMedication())
	incomingRoutes.GET("/medication/:medication_id", controller.GetMedication())
	incomingRoutes.GET("/medications", controller.GetMedications())
	incomingRoutes.PUT("/medication/:medication_id", controller.UpdateMedication())
	incomingRoutes.DELETE("/medication/:medication_id", controller.DeleteMedication())
}
