package controllers

import (
	"net/http"
	"strings"

	"github.com/sumpierrezf/star-wars-api-with-token/models"

	"github.com/gin-gonic/gin"
)

const (
	msgUserNotFound  = "Usuario no existente."
	msgUserCreated   = "Usuario creado correctamente."
	msgUserExists    = "El usuario ya existe"
	msgMissingFields = "Faltan campos obligatorios: email, user_name, password"
	msgNotFound      = "Recurso no encontrado"
	msgInternal      = "Error interno del servidor"
)

var kindLabels = map[models.Kind]string{
	models.KindCharacter: "personaje",
	models.KindPlanet:    "planeta",
	models.KindVehicle:   "vehiculo",
}

func capitalized(kind models.Kind) string {
	label := kindLabels[kind]
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func msgFavoriteAdded(kind models.Kind) string {
	return capitalized(kind) + " agregado a favoritos"
}

func msgFavoriteRemoved(kind models.Kind) string {
	return capitalized(kind) + " eliminado de favoritos"
}

func msgAlreadyFavorited(kind models.Kind) string {
	return "El " + kindLabels[kind] + " ya ha sido agregado"
}

func msgEntityNotFound(kind models.Kind) string {
	return "El " + kindLabels[kind] + " no existe"
}

func msgFavoriteNotFound(kind models.Kind) string {
	return "El " + kindLabels[kind] + " no esta en favoritos"
}

func respondMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

func respondInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	respondMsg(c, http.StatusInternalServerError, msgInternal)
}
