package controllers

import (
	"errors"
	"log"
	"net/http"

	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/models"
	"Gin_postgres_redis_library_api/services"

	"github.com/gin-gonic/gin"
)

type RoleController struct{ *Srv }

func NewRoleController(s *Srv) *RoleController { return &RoleController{Srv: s} }

type setRoleReq struct {
	UserID int64       `json:"userId" binding:"required"`
	Role   models.Role `json:"role" binding:"required,oneof=USER LIBRARIAN"`
}

// 馆员给用户设角色；角色只能设置一次
func (rc *RoleController) SetRole(c *gin.Context) {
	var in setRoleReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": err.Error()})
		return
	}
	rec, err := rc.Roles.SetRole(c.Request.Context(), in.UserID, in.Role)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, rec)
	case errors.Is(err, services.ErrRoleAlreadySet):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		log.Printf("roles: setting role for user %d: %v", in.UserID, err)
		c.JSON(http.StatusInternalServerError, app.H{"error": genericServerError})
	}
}
