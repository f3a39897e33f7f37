package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/internal/container"
	handlers "github.com/wanderplan/wanderplan/internal/interface/http"
	"github.com/wanderplan/wanderplan/internal/interface/middleware"
	"github.com/wanderplan/wanderplan/pkg/helpers"
)

// CollaboratorModule wires the collaborator lifecycle into routes, all under
// the parent itinerary.

type CollaboratorModule struct {
	Handler *handlers.CollaboratorHandler
	JWT     *helpers.JWTManager
}

func NewCollaboratorModule(h *handlers.CollaboratorHandler, jwt *helpers.JWTManager) *CollaboratorModule {
	return &CollaboratorModule{Handler: h, JWT: jwt}
}

func (m *CollaboratorModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/itineraries/:id/collaborators", m.Handler.List)
		auth.POST("/itineraries/:id/collaborators", m.Handler.Invite)
		auth.POST("/itineraries/:id/collaborators/accept", m.Handler.Accept)
		auth.PUT("/itineraries/:id/collaborators/:userId", m.Handler.ChangeRole)
		auth.DELETE("/itineraries/:id/collaborators/:userId", m.Handler.Remove)
	}
}
