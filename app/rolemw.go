package app

import (
	"log"
	"net/http"
	"strconv"

	"Gin_postgres_redis_library_api/metrics"
	"Gin_postgres_redis_library_api/models"
	"Gin_postgres_redis_library_api/services"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// AttachUserRole reads the caller id from the configured header and attaches
// the resolved role to the request context. It never blocks the request:
// a missing header, an unknown user and a lookup failure all resolve to no
// role and the handler chain continues.
func AttachUserRole(roles *services.RoleService, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := strconv.ParseInt(c.GetHeader(header), 10, 64)
		role, err := roles.GetRole(c.Request.Context(), userID)
		if err != nil {
			log.Printf("rolemw: resolving role for user %d: %v", userID, err)
			role = ""
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireRole grants access iff a role is attached and is in the allowed
// set. An empty allowed set denies everyone. The caller only ever sees a
// generic forbidden; which roles were required stays in the log.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CallerRole(c)
		if role != "" {
			for _, a := range allowed {
				if role == a {
					c.Next()
					return
				}
			}
		}
		log.Printf("rolemw: forbidden %s %s: role %q, allowed %v",
			c.Request.Method, c.Request.URL.Path, role, allowed)
		metrics.AuthDeniedTotal.Inc()
		c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
	}
}

// CallerID returns the numeric caller id attached by AttachUserRole, zero if
// none was sent.
func CallerID(c *gin.Context) int64 {
	v, _ := c.Get(ctxUserID)
	id, _ := v.(int64)
	return id
}

func CallerRole(c *gin.Context) models.Role {
	v, _ := c.Get(ctxRole)
	role, _ := v.(models.Role)
	return role
}
