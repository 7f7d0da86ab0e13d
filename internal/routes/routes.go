package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calzone/internal/authz"
	"calzone/internal/handlers"
	"calzone/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	pipelineHandler *handlers.PipelineHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	pipeline := r.Group("/pipeline")
	{
		pipeline.GET("", pipelineHandler.List)
		pipeline.GET("/metrics", pipelineHandler.Metrics)
		pipeline.POST("/deals", pipelineHandler.CreateDeal)
		pipeline.PUT("/deals/:id/assign", pipelineHandler.Assign)
		pipeline.GET("/report",
			middleware.RequireRoles(authz.RoleEmployee, authz.RoleAdmin),
			reportHandler.PipelineReport)
	}

	return r
}
