package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/internal/container"
	handlers "github.com/wanderplan/wanderplan/internal/interface/http"
	"github.com/wanderplan/wanderplan/internal/interface/middleware"
	"github.com/wanderplan/wanderplan/pkg/helpers"
)

// ItineraryModule wires itinerary CRUD, duplication, cover upload and public
// search into routes. Everything except /itineraries/search requires a session;
// read access to a public itinerary is decided per request by the resolver, so
// GET /itineraries/:id still needs an authenticated caller.

type ItineraryModule struct {
	Handler *handlers.ItineraryHandler
	JWT     *helpers.JWTManager
}

func NewItineraryModule(h *handlers.ItineraryHandler, jwt *helpers.JWTManager) *ItineraryModule {
	return &ItineraryModule{Handler: h, JWT: jwt}
}

func (m *ItineraryModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/itineraries/search", searchLimiter, m.Handler.SearchPublic)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/itineraries", m.Handler.Create)
		auth.GET("/itineraries", m.Handler.ListOwned)
		auth.GET("/itineraries/shared", m.Handler.ListShared)
		auth.GET("/itineraries/:id", m.Handler.Get)
		auth.PUT("/itineraries/:id", m.Handler.Update)
		auth.DELETE("/itineraries/:id", m.Handler.Delete)
		auth.POST("/itineraries/:id/duplicate", m.Handler.Duplicate)
		auth.POST("/itineraries/:id/cover", m.Handler.UploadCover)
	}
}
