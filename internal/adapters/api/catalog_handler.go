package api

import (
	"net/http"

	"farmerassist.app/internal/core/catalog"
	"github.com/gin-gonic/gin"
)

// MarkTaskRequest represents the HTTP request for updating a task
type MarkTaskRequest struct {
	TaskID string `json:"taskId"`
	Status string `json:"status" binding:"omitempty,max=32"`
}

func (s *HTTPServerAdapter) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogService.Profile(c.Request.Context()))
}

func (s *HTTPServerAdapter) getTasks(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogService.Tasks(c.Request.Context()))
}

// markTask handles POST /api/v1/tasks/mark requests
func (s *HTTPServerAdapter) markTask(c *gin.Context) {
	var httpReq MarkTaskRequest
	if err := bindJSON(c, &httpReq); err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.catalogService.MarkTask(c.Request.Context(), catalog.TaskMark{
		TaskID: httpReq.TaskID,
		Status: httpReq.Status,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *HTTPServerAdapter) getPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogService.Policies(c.Request.Context(), catalog.PolicyQuery{
		Query: c.Query("query"),
		State: c.Query("state"),
		Crop:  c.Query("crop"),
	}))
}

func (s *HTTPServerAdapter) getLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogService.Leaderboard(c.Request.Context(), c.Query("scope"), c.Query("id")))
}

// detectDisease handles POST /api/v1/detect-disease. The uploaded image is not inspected.
func (s *HTTPServerAdapter) detectDisease(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogService.DetectDisease(c.Request.Context()))
}
