package routes

import (
	wishlistControllers "github.com/Prikus-01/Amazon-clone/controllers/wishlist"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupWishlistRoutes(r *gin.Engine, db *gorm.DB) {
	wishlist := r.Group("/wishlist")
	{
		wishlist.GET("", wishlistControllers.GetWishlistHandler(db))
		wishlist.POST("", wishlistControllers.AddToWishlistHandler(db))
		wishlist.GET("/check/:productId", wishlistControllers.CheckWishlistHandler(db))
		wishlist.DELETE("/:productId", wishlistControllers.RemoveFromWishlistHandler(db))
	}
}
