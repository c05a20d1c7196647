package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/fair-marriage-api/internal/handlers"
	"github.com/harentsoaR/fair-marriage-api/internal/middleware"
)

type Options struct {
	AllowOrigins []string
	Limiter      middleware.Limiter  // nil disables rate limiting
	Metrics      *middleware.Metrics // nil disables /metrics

	// TrustedProxies are the addresses or CIDRs allowed to set
	// X-Forwarded-For. Empty means the client IP is always the remote address.
	TrustedProxies []string
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func SetupRouter(h *handlers.Handler, opts Options) *gin.Engine {
	router := gin.Default()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		log.Printf("WARNING: invalid trusted proxies %v: %v; trusting none", opts.TrustedProxies, err)
		_ = router.SetTrustedProxies(nil)
	}

	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", opts.Metrics.Handler())
	}
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))

	router.GET("/", h.Home)
	router.GET("/health", h.Health)

	api := router.Group("/")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimitMiddleware(opts.Limiter))
	}
	{
		// Biodatas
		api.GET("/featureBiodatas", h.GetFeaturedBiodatas)
		api.GET("/biodatas", h.GetBiodatas)
		api.GET("/biodatas/:bioId", h.GetBiodata)
		api.GET("/userBiodata", h.GetUserBiodata)
		api.GET("/similarbio", h.GetSimilarBiodatas)
		api.POST("/biodatas", h.CreateBiodata)
		api.PATCH("/biodatas/:bioId", h.UpdateBiodata)

		// Users and roles
		api.GET("/users", h.GetUsers)
		api.GET("/userRole", h.GetUserRole)
		api.POST("/users", h.CreateUser)
		api.PATCH("/usersAdmin", h.MakeAdmin)
		api.PATCH("/usersPremium", h.MakePremium)

		// Dashboard
		api.GET("/biodataCounts", h.GetBiodataCounts)
		api.GET("/revenues", h.GetRevenues)
		api.GET("/reviews", h.GetReviews)

		// Contact requests
		api.GET("/contactRequests", h.GetContactRequests)
		api.GET("/apprContRequests", h.GetAllContactRequests)
		api.POST("/contactRequests", h.CreateContactRequest)
		api.PATCH("/contactRequests", h.ApproveContactRequest)
		api.DELETE("/contactRequests/:biodataId", h.DeleteContactRequest)

		// Premium requests
		api.GET("/premiumRequests", h.GetPremiumRequests)
		api.POST("/premiumRequests", h.CreatePremiumRequest)
		api.PATCH("/premiumRequests", h.ApprovePremiumRequest)

		// Favourites
		api.GET("/favourites", h.GetFavourites)
		api.POST("/favourites", h.CreateFavourite)
		api.DELETE("/favourites/:biodataId", h.DeleteFavourite)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
