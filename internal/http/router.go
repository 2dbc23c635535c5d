package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tripsearch/internal/config"
	h "tripsearch/internal/http/handlers"
	"tripsearch/internal/http/middleware"
	"tripsearch/internal/view"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	return NewRouterWithHandlers(env, h.NewTripHandlers(env))
}

// NewRouterWithHandlers is NewRouter with caller-provided handlers, so tests
// can point the upstream client at a fake trips service.
func NewRouterWithHandlers(env intconfig.Env, trips *h.TripHandlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.Secure(env.SSL))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Page
	r.GET("/", trips.SearchPage)
	r.GET("/partials/trips", trips.SearchResultsPartial)
	r.GET("/static/*filepath", h.StaticAssets("/static", view.StaticFS()))

	api := r.Group("/api", middleware.CORS(env.CORSAllowedOrigins))
	{
		api.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
		api.GET("/health", trips.Health)
		api.GET("/routes", h.Routes)

		tripsGroup := api.Group("/trips")
		tripsGroup.GET("", trips.SearchTrips)
		tripsGroup.GET("/export.pdf", trips.ExportTripsPDF)
	}

	h.SetRouter(r)
	return r
}
