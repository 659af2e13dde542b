package routes

import (
	controller "golang-medtrackbackend/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.RouterGroup) {
	incomingRoutes.GET("/user/:user_id", controller.GetUser())
	incomingRoutes.PUT("/user/:user_id", controller.UpdateUser())
	incomingRoutes.DELETE("/user/:user_id", controller.DeleteUser())
	incomingRoutes.POST("/user/uploadprofile/:user_id", controller.UploadProfile())
}
