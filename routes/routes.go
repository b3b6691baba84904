package routes

import (
	"net/http"
	"time"

	"medisched/handlers"
	"medisched/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the office calendar endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("/availability", hb.ListAvailabilityHandler)
		api.POST("/book", hb.BookAppointmentHandler)
	}
}

// RegisterSpecialistRoutes registers the read-only specialist schedule endpoints.
func RegisterSpecialistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/specialists")
	{
		api.GET("", hb.ListSpecialistsHandler)
		api.GET("/:specialist/availability", hb.CheckAvailabilityRangeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterSpecialistRoutes(r, hb)
}
