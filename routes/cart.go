package routes

import (
	cartControllers "github.com/Prikus-01/Amazon-clone/controllers/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.POST("", cartControllers.AddToCartHandler(db))
		cart.PUT("/:productId", cartControllers.UpdateQuantityHandler(db))
		cart.DELETE("/:productId", cartControllers.RemoveFromCartHandler(db))
		cart.DELETE("", cartControllers.ClearCartHandler(db))
	}
}
