package controllers

import (
	"errors"
	"net/http"

	"github.com/sumpierrezf/star-wars-api-with-token/services"
	"github.com/sumpierrezf/star-wars-api-with-token/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	users  *services.UserService
	logger *zap.Logger
}

func NewUserController(users *services.UserService, logger *zap.Logger) *UserController {
	return &UserController{users: users, logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GET /user
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		uc.logger.Error("list users", zap.Error(err))
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /user/:id
func (uc *UserController) Get(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		respondMsg(c, http.StatusNotFound, msgNotFound)
		return
	}

	user, err := uc.users.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		respondMsg(c, http.StatusNotFound, msgUserNotFound)
	case err != nil:
		uc.logger.Error("get user", zap.Uint("user_id", id), zap.Error(err))
		respondInternal(c, err)
	default:
		c.JSON(http.StatusOK, user)
	}
}

// POST /user
func (uc *UserController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	_, err := uc.users.Create(c.Request.Context(), req.Email, req.UserName, req.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		respondMsg(c, http.StatusBadRequest, msgUserExists)
	case err != nil:
		uc.logger.Error("create user", zap.Error(err))
		respondInternal(c, err)
	default:
		respondMsg(c, http.StatusOK, msgUserCreated)
	}
}
