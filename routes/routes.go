package routes

import (
	"Gin_postgres_redis_library_api/app"
	"Gin_postgres_redis_library_api/controllers"
	"Gin_postgres_redis_library_api/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	bookCtl := controllers.NewBookController(s)
	userCtl := controllers.NewUserController(s)
	roleCtl := controllers.NewRoleController(s)

	// 每个请求先解析角色；各路由自己声明允许的角色集合
	r.Use(app.AttachUserRole(s.Roles, a.Config.AuthHeader))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ------------------------------
	// 图书 + 借还
	// ------------------------------
	books := r.Group("/books")
	{
		books.GET("", app.RequireRole(models.RoleUser, models.RoleLibrarian), bookCtl.ListBooks)
		books.POST("", app.RequireRole(models.RoleLibrarian), bookCtl.CreateBook)

		books.POST("/checkout", app.RequireRole(models.RoleUser), bookCtl.Checkout)
		books.DELETE("/checkout/:id", app.RequireRole(models.RoleUser), bookCtl.ReturnBook)
		books.GET("/checkout/overdue", app.RequireRole(models.RoleLibrarian), bookCtl.ListOverdue)
		books.GET("/checkout/active", app.RequireRole(models.RoleUser), bookCtl.ListActive)

		books.GET("/:id", app.RequireRole(models.RoleUser, models.RoleLibrarian), bookCtl.GetBook)
		books.DELETE("/:id", app.RequireRole(models.RoleLibrarian), bookCtl.DeleteBook)
	}

	// ------------------------------
	// 用户
	// ------------------------------
	users := r.Group("/users")
	{
		users.GET("/me", app.RequireRole(models.RoleUser, models.RoleLibrarian), userCtl.Me)
		users.POST("/role", app.RequireRole(models.RoleLibrarian), roleCtl.SetRole)
	}
}
