package controllers

import (
	"errors"
	"net/http"

	"github.com/sumpierrezf/star-wars-api-with-token/models"
	"github.com/sumpierrezf/star-wars-api-with-token/services"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
	"github.com/sumpierrezf/star-wars-api-with-token/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteController struct {
	favorites *services.FavoriteService
	store     *store.Store
	logger    *zap.Logger
}

func NewFavoriteController(favorites *services.FavoriteService, st *store.Store, logger *zap.Logger) *FavoriteController {
	return &FavoriteController{favorites: favorites, store: st, logger: logger}
}

// GET /favourite
func (fc *FavoriteController) List(c *gin.Context) {
	respondList(c, fc.logger, "favorites", fc.store.ListFavorites)
}

// Add returns the handler for POST /favourite/<kind>s/:user_id/:entity_id.
// Every failure, duplicates included, answers 404.
func (fc *FavoriteController) Add(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, entityID, ok := favoriteParams(c)
		if !ok {
			respondMsg(c, http.StatusNotFound, msgNotFound)
			return
		}

		_, err := fc.favorites.Add(c.Request.Context(), userID, entityID, kind)
		switch {
		case err == nil:
			respondMsg(c, http.StatusOK, msgFavoriteAdded(kind))
		case errors.Is(err, services.ErrAlreadyFavorited):
			respondMsg(c, http.StatusNotFound, msgAlreadyFavorited(kind))
		case errors.Is(err, services.ErrEntityNotFound):
			respondMsg(c, http.StatusNotFound, msgEntityNotFound(kind))
		case errors.Is(err, services.ErrUserNotFound):
			respondMsg(c, http.StatusNotFound, msgUserNotFound)
		default:
			respondInternal(c, err)
		}
	}
}

// Remove returns the handler for DELETE /favourite/<kind>s/:user_id/:entity_id.
func (fc *FavoriteController) Remove(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, entityID, ok := favoriteParams(c)
		if !ok {
			respondMsg(c, http.StatusNotFound, msgNotFound)
			return
		}

		err := fc.favorites.Remove(c.Request.Context(), userID, entityID, kind)
		switch {
		case err == nil:
			respondMsg(c, http.StatusOK, msgFavoriteRemoved(kind))
		case errors.Is(err, services.ErrUserNotFound):
			respondMsg(c, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, services.ErrEntityNotFound):
			respondMsg(c, http.StatusNotFound, msgEntityNotFound(kind))
		case errors.Is(err, services.ErrFavoriteNotFound):
			respondMsg(c, http.StatusNotFound, msgFavoriteNotFound(kind))
		default:
			respondInternal(c, err)
		}
	}
}

func favoriteParams(c *gin.Context) (uint, uint, bool) {
	userID, ok := utils.ParseID(c.Param("user_id"))
	if !ok {
		return 0, 0, false
	}
	entityID, ok := utils.ParseID(c.Param("entity_id"))
	if !ok {
		return 0, 0, false
	}
	return userID, entityID, true
}
