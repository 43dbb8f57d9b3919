package routes

import (
	"github.com/Arnab1999india/bazaar/controllers"
	"github.com/Arnab1999india/bazaar/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every API route. Seller write routes require the
// gateway-resolved identity; browse routes accept it when present.
func RegisterRoutes(r *gin.Engine, products *controllers.ProductController, catalog *controllers.CatalogController) {
	productRoutes := r.Group("/products")
	productRoutes.Use(middleware.Identity())
	{
		productRoutes.GET("", products.ListProducts)
		productRoutes.GET("/:id", products.GetProduct)
		productRoutes.GET("/:id/variants", products.GetVariants)
		productRoutes.GET("/:id/recommendations", products.Recommendations)

		productRoutes.POST("", middleware.RequireUser(), products.CreateProduct)
		productRoutes.PUT("/:id", middleware.RequireUser(), products.UpdateProduct)
		productRoutes.DELETE("/:id", middleware.RequireUser(), products.DeleteProduct)
	}

	catalogRoutes := r.Group("/catalog")
	catalogRoutes.Use(middleware.Identity())
	{
		catalogRoutes.GET("/categories", catalog.Categories)
		catalogRoutes.GET("/brands", catalog.Brands)
		catalogRoutes.GET("/deals", catalog.Deals)
		catalogRoutes.GET("/bestsellers", catalog.Bestsellers)
		catalogRoutes.GET("/recently-viewed", middleware.RequireUser(), catalog.RecentlyViewed)
		catalogRoutes.POST("/events/view", catalog.TrackView)
	}
}
