package transaction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	transactions := r.Group("/transactions")
	{
		transactions.POST("/add", handler.Add)
		transactions.GET("/get-all", handler.GetAll)
		transactions.GET("/get-all-by-employee/:employeeId", handler.GetAllByEmployee)
		transactions.GET("/get-total-amount-by-period", handler.GetTotalAmountByPeriod)
		transactions.DELETE("/delete/:transactionId", handler.Delete)
	}
}
