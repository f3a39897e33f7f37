package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderplan/wanderplan/internal/container"
	handlers "github.com/wanderplan/wanderplan/internal/interface/http"
	"github.com/wanderplan/wanderplan/internal/interface/middleware"
	"github.com/wanderplan/wanderplan/pkg/helpers"
)

// ItemModule wires itinerary item routes. Items are always addressed through
// their parent itinerary.

type ItemModule struct {
	Handler *handlers.ItemHandler
	JWT     *helpers.JWTManager
}

func NewItemModule(h *handlers.ItemHandler, jwt *helpers.JWTManager) *ItemModule {
	return &ItemModule{Handler: h, JWT: jwt}
}

func (m *ItemModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/itineraries/:id/items", m.Handler.List)
		auth.POST("/itineraries/:id/items", m.Handler.Create)
		auth.PUT("/itineraries/:id/items/:itemId", m.Handler.Update)
		auth.DELETE("/itineraries/:id/items/:itemId", m.Handler.Delete)
	}
}
