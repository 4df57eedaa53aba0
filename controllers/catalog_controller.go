package controllers

import (
	"context"
	"net/http"

	"github.com/sumpierrezf/star-wars-api-with-token/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogController serves the read-only catalog lists.
type CatalogController struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCatalogController(st *store.Store, logger *zap.Logger) *CatalogController {
	return &CatalogController{store: st, logger: logger}
}

// GET /characters
func (cc *CatalogController) Characters(c *gin.Context) {
	respondList(c, cc.logger, "characters", cc.store.ListCharacters)
}

// GET /planets
func (cc *CatalogController) Planets(c *gin.Context) {
	respondList(c, cc.logger, "planets", cc.store.ListPlanets)
}

// GET /vehicles
func (cc *CatalogController) Vehicles(c *gin.Context) {
	respondList(c, cc.logger, "vehicles", cc.store.ListVehicles)
}

func respondList[T any](c *gin.Context, logger *zap.Logger, what string, fetch func(context.Context) ([]T, error)) {
	items, err := fetch(c.Request.Context())
	if err != nil {
		logger.Error("list "+what, zap.Error(err))
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
