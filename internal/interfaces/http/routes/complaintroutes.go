package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "fieldserve/internal/interfaces/http/handlers/complaint"
	jobcardhandlers "fieldserve/internal/interfaces/http/handlers/jobcard"
	"fieldserve/internal/interfaces/http/middleware"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	JobCardHandler   *jobcardhandlers.JobCardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		complaints.POST("", config.ComplaintHandler.CreateComplaint)
		complaints.GET("", config.ComplaintHandler.ListComplaints)
		complaints.GET("/board", config.ComplaintHandler.GetBoard)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		complaints.POST("/:id/assign", config.ComplaintHandler.AssignTechnician)
		complaints.POST("/:id/unassign", config.ComplaintHandler.UnassignTechnician)
		// Using PATCH for state changes as per RESTful best practices
		complaints.PATCH("/:id/status", config.ComplaintHandler.ChangeStatus)
		complaints.POST("/:id/notes", config.ComplaintHandler.AddNote)
		complaints.GET("/:id/notes", config.ComplaintHandler.ListNotes)
		complaints.GET("/:id/history", config.ComplaintHandler.GetHistory)
		complaints.POST("/:id/jobcard", config.JobCardHandler.GenerateJobCard)
		complaints.GET("/:id/jobcard", config.JobCardHandler.GetJobCard)

		// Generic parameterized routes (must come LAST)
		complaints.GET("/:id", config.ComplaintHandler.GetComplaint)
	}

	jobcards := engine.Group("/jobcards")
	jobcards.Use(config.AuthMiddleware.RequireAuth())
	{
		jobcards.PATCH("/:id", config.JobCardHandler.UpdateJobCard)
	}
}
