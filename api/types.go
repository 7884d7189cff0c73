package api

import (
	"github.com/rpupo63/studio-cms-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     resourceHandler[models.Project]
	blogPostHandler    resourceHandler[models.BlogPost]
	serviceHandler     resourceHandler[models.Service]
	testimonialHandler resourceHandler[models.Testimonial]
	teamMemberHandler  resourceHandler[models.TeamMember]
	messageHandler     messageHandler
	mediaHandler       mediaHandler
	settingsHandler    settingsHandler
	authHandler        authHandler
	seedHandler        seedHandler
	publicHandler      publicHandler
	dashboardHandler   dashboardHandler
	healthHandler      healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string            `json:"error" example:"invalid project payload: validation failed"`
	Status  string            `json:"status" example:"error"`
	Message string            `json:"message" example:"Invalid project payload"`
	Field   string            `json:"field,omitempty" example:"title"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// DeleteResponse is returned by every successful delete.
type DeleteResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"project deleted"`
}
