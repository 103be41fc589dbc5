package routes

import (
	"vaxbook/handlers"
	"vaxbook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterVaccineRoutes registers the public catalogue endpoints.
func RegisterVaccineRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vaccines")
	{
		api.GET("/get-vaccines", hb.GetVaccinesHandler)
		api.GET("/get-vaccine/:id", hb.GetVaccineHandler)
	}
}

// RegisterChildRoutes registers child profile endpoints.
func RegisterChildRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/children")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/get-children", hb.GetChildrenHandler)
		api.POST("/add-child", hb.AddChildHandler)
	}
}

// RegisterAppointmentRoutes sets up the endpoints for booking vaccinations.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/get-appointments", hb.GetAppointmentsHandler)
		api.POST("/book-appointment", hb.BookAppointmentHandler)
		api.PUT("/cancel-appointment/:id", hb.CancelAppointmentHandler)
	}
}
