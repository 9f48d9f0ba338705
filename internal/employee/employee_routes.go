package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.POST("/add", handler.Add)
		employees.DELETE("/delete/:employeeId", handler.Delete)
		employees.GET("/get-all", handler.GetAll)
	}
}
