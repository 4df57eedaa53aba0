package middleware

import (
	"net/http"

	"github.com/sumpierrezf/star-wars-api-with-token/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(logger, recovered, c.Request.Method+" "+c.FullPath())

		c.JSON(http.StatusInternalServerError, gin.H{
			"msg": "Error interno del servidor",
		})
		c.Abort()
	})
}
