// controllers/srv.go
package controllers

import (
	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/cache"
	"Gin_postgres_redis_library_api/db"
	"Gin_postgres_redis_library_api/services"
)

// Srv 聚合控制器共享的依赖；全部显式接线，没有全局容器
type Srv struct {
	Users services.UserStore
	Roles *services.RoleService
	Books *services.BookService
	Cfg   app.Config
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	roleCache := cache.NewRoleCache(a.RDB, a.Config.RoleCacheTTL)
	return &Srv{
		Users: repo,
		Roles: services.NewRoleService(repo, roleCache),
		Books: services.NewBookService(repo, repo, repo, services.Config{
			CheckoutPeriodDays: a.Config.CheckoutPeriodDays,
			MaxCheckouts:       a.Config.MaxCheckouts,
		}),
		Cfg: a.Config,
	}
}

// 500 统一给这句，细节只进日志
const genericServerError = "An unexpected error has occurred. Please try again later."
