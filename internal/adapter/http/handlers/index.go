package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type EndpointDoc struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

// APIIndex serves GET /api with a short self-description of the API.
func APIIndex(version string) gin.HandlerFunc {
	doc := gin.H{
		"message": "Task and user management API",
		"version": version,
		"endpoints": []EndpointDoc{
			{Path: "/api/users", Methods: []string{"GET", "POST"}, Description: "User management"},
			{Path: "/api/users/:id", Methods: []string{"GET", "PUT", "DELETE"}, Description: "Operations on a single user"},
			{Path: "/api/tasks", Methods: []string{"GET", "POST"}, Description: "Task management"},
			{Path: "/api/tasks/:id", Methods: []string{"GET", "PUT", "DELETE"}, Description: "Operations on a single task"},
			{Path: "/api/tasks/:id/status", Methods: []string{"PATCH"}, Description: "Task status transition"},
			{Path: "/health", Methods: []string{"GET"}, Description: "Detailed health report"},
			{Path: "/metrics", Methods: []string{"GET"}, Description: "Prometheus metrics"},
		},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}
