package routes

import (
	orderControllers "github.com/Prikus-01/Amazon-clone/controllers/order"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("", orderControllers.GetOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.POST("", orderControllers.PlaceOrderHandler(db))
	}
}
