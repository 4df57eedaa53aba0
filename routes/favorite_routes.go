package routes

import (
	"github.com/sumpierrezf/star-wars-api-with-token/controllers"
	"github.com/sumpierrezf/star-wars-api-with-token/models"

	"github.com/gin-gonic/gin"
)

func SetupFavoriteRoutes(r *gin.Engine, favoriteController *controllers.FavoriteController, writeLimit gin.HandlerFunc) {
	grp := r.Group("/favourite")
	{
		grp.GET("", favoriteController.List)
		for _, kind := range models.Kinds {
			path := "/" + kind.Plural() + "/:user_id/:entity_id"
			grp.POST(path, writeLimit, favoriteController.Add(kind))
			grp.DELETE(path, writeLimit, favoriteController.Remove(kind))
		}
	}
}
