package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Office appointment endpoints.
	ListAvailabilityHandler gin.HandlerFunc
	BookAppointmentHandler  gin.HandlerFunc

	// Specialist (read-only) schedule endpoints.
	ListSpecialistsHandler        gin.HandlerFunc
	CheckAvailabilityRangeHandler gin.HandlerFunc
}
