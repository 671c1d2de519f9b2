package router

import (
	"malifaux-tracker-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerCollectionRoutes(api *gin.RouterGroup) {
	api.GET("/collection", handler.GetCollection)
	api.GET("/collection/:id", handler.GetCollectionEntry)
	api.POST("/collection", handler.AddToCollection)
	api.PUT("/collection/:id", handler.UpdateCollectionEntry)
	api.DELETE("/collection/:id", handler.DeleteCollectionEntry)

	api.GET("/wishlist", handler.GetWishlist)
}
