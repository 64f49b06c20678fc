package controllers

import (
	"log"
	"net/http"

	"Gin_postgres_redis_library_api/app"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// whoami：按请求头里的 id 查用户档案
func (uc *UserController) Me(c *gin.Context) {
	userID := app.CallerID(c)
	log.Printf("users: finding user %d", userID)
	user, err := uc.Users.FindUserByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
