package routes

import (
	"github.com/Prikus-01/Amazon-clone/cache"
	productcontroller "github.com/Prikus-01/Amazon-clone/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB, store *cache.Cache) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))

		// Static segments must be registered alongside the :id wildcard.
		products.GET("/categories", productcontroller.GetCategories(db, store))
		products.GET("/category-list", productcontroller.GetCategoryList(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/category/:slug", productcontroller.GetProductsByCategory(db))

		products.GET("/:id", productcontroller.GetProductByID(db, store))
	}
}
