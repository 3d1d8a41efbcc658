// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msollami/vacabuilder/internal/http/handlers"
	"github.com/msollami/vacabuilder/internal/http/middleware"
	"github.com/msollami/vacabuilder/internal/modules/itinerary"
)

func NewRouter(planner *itinerary.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	planHandler := handlers.NewPlanHandler(planner)
	r.GET("/health", planHandler.Health)
	r.POST("/api/plan", planHandler.Plan)
	r.GET("/api/itineraries", planHandler.History)

	return r
}
