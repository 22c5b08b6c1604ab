package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskdesk/internal/adapter/http/handlers"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/pkg/apierrors"
)

const apiVersion = "1.0.0"

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
) {
	r.GET("/health", healthHandler.Report)
	r.GET("/health/live", healthHandler.Liveness)
	r.GET("/health/ready", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("", handlers.APIIndex(apiVersion))
		api.GET("/health", healthHandler.Basic)

		api.GET("/users", userHandler.ListUsers)
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/:id", userHandler.GetUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.PATCH("/tasks/:id/status", taskHandler.ChangeTaskStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		lang := middleware.NormalizeLang(c.GetHeader("Accept-Language"))
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, lang),
		)
	})
}
