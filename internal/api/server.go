package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sponsra/sponsra-app-sub000/internal/service"
)

// Server is the HTTP surface consumed by the booking, settings and calendar
// UIs. Auth and sessions are handled upstream by the hosted platform; this
// server only exposes the scheduling core.
type Server struct {
	availability *service.AvailabilityService
	schedules    *service.ScheduleService
	bookings     *service.BookingService
	router       *gin.Engine
	log          *slog.Logger
}

func NewServer(
	availability *service.AvailabilityService,
	schedules *service.ScheduleService,
	bookings *service.BookingService,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		availability: availability,
		schedules:    schedules,
		bookings:     bookings,
		router:       gin.Default(),
		log:          log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")

	api.GET("/tiers/:id/availability", s.getTierAvailability)
	api.PUT("/tiers/:id/schedule", s.putTierSchedule)

	api.GET("/newsletters/:id/calendar", s.getNewsletterCalendar)
	api.GET("/newsletters/:id/schedule", s.getNewsletterSchedule)
	api.PUT("/newsletters/:id/schedule", s.putNewsletterSchedule)

	api.POST("/schedules/validate", s.validateSchedule)
	api.POST("/schedules/preview", s.previewSchedule)

	api.POST("/bookings", s.createBooking)
}

// Router exposes the handler for an http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}
