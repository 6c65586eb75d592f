package routes

import (
	"net/http"
	"time"

	"clinagenda/handlers"
	"clinagenda/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the slot-finder endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/disponibilidad")
	{
		api.GET("", h.FindSlots)
		api.GET("/check", h.CheckSlot)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/citas")
	{
		api.POST("", h.Create)
		api.PUT("/:id/reprogramar", h.Reschedule)
		api.PUT("/:id/confirmar", h.Confirm)
		api.DELETE("/:id", h.Cancel)
	}
}

// RegisterProfessionalRoutes registers the staff roster endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, ph *handlers.ProfessionalHandler, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/profesionales")
	{
		api.GET("", ph.ListActive)
		api.GET("/:id/agenda", ah.DayAgenda)
	}
}

// RegisterHealthRoutes registers the health snapshot endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// CORSMiddleware returns the CORS policy shared by all routes.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
