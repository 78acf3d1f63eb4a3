package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sponsra/sponsra-app-sub000/internal/calendar"
	"github.com/Sponsra/sponsra-app-sub000/internal/repository"
	"github.com/Sponsra/sponsra-app-sub000/internal/schedule"
	"github.com/Sponsra/sponsra-app-sub000/internal/service"
)

func rangeFromQuery(c *gin.Context) (schedule.DateRange, bool) {
	rng, err := schedule.NewDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD with start <= end"})
		return schedule.DateRange{}, false
	}
	return rng, true
}

func (s *Server) getTierAvailability(c *gin.Context) {
	rng, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	days, err := s.availability.ResolveTier(c.Request.Context(), c.Param("id"), rng)
	if err != nil {
		s.log.Error("resolve tier availability", "tier", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	paged := calendar.Paginate(dayResponses(days), page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"days":      paged.Items,
		"page":      paged.Page,
		"page_size": paged.PageSize,
		"total":     paged.Total,
		"has_next":  paged.HasNext,
	})
}

func (s *Server) getNewsletterCalendar(c *gin.Context) {
	rng, ok := rangeFromQuery(c)
	if !ok {
		return
	}

	days, err := s.availability.PublicationCalendar(c.Request.Context(), c.Param("id"), rng)
	if err != nil {
		s.log.Error("publication calendar", "newsletter", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": dayResponses(days)})
}

func (s *Server) validateSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sched, err := req.toSchedule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.schedules.Validate(sched))
}

type previewRequest struct {
	Schedule scheduleRequest `json:"schedule"`
	From     string          `json:"from"`
	Count    int             `json:"count"`
}

func (s *Server) previewSchedule(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sched, err := req.Schedule.toSchedule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := schedule.ParseDate(req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dates":       s.schedules.Preview(sched, from, req.Count),
		"description": s.schedules.Describe(sched),
	})
}

func (s *Server) getNewsletterSchedule(c *gin.Context) {
	sched, err := s.schedules.NewsletterSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "newsletter has no schedule"})
			return
		}
		s.log.Error("load newsletter schedule", "newsletter", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule":    scheduleResponse(sched),
		"description": s.schedules.Describe(sched),
	})
}

func (s *Server) putNewsletterSchedule(c *gin.Context) {
	s.saveSchedule(c, func(sched schedule.Schedule) (schedule.ValidationResult, error) {
		return s.schedules.SaveNewsletterSchedule(c.Request.Context(), c.Param("id"), sched)
	})
}

func (s *Server) putTierSchedule(c *gin.Context) {
	s.saveSchedule(c, func(sched schedule.Schedule) (schedule.ValidationResult, error) {
		return s.schedules.SaveTierSchedule(c.Request.Context(), c.Param("id"), sched)
	})
}

func (s *Server) saveSchedule(c *gin.Context, save func(schedule.Schedule) (schedule.ValidationResult, error)) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sched, err := req.toSchedule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := save(sched)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSchedule) {
			c.JSON(http.StatusUnprocessableEntity, result)
			return
		}
		s.log.Error("save schedule", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save schedule"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type bookingRequest struct {
	TierID      string `json:"tier_id" binding:"required"`
	SponsorID   string `json:"sponsor_id" binding:"required"`
	RunDate     string `json:"run_date" binding:"required"`
	AmountCents int64  `json:"amount_cents"`
	CreativeURL string `json:"creative_url"`
	Notes       string `json:"notes"`
}

func (s *Server) createBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := s.bookings.Book(c.Request.Context(), service.BookRequest{
		TierID:      req.TierID,
		SponsorID:   req.SponsorID,
		RunDate:     req.RunDate,
		AmountCents: req.AmountCents,
		CreativeURL: req.CreativeURL,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDateNotAvailable):
			c.JSON(http.StatusConflict, gin.H{"error": "date is not available"})
		case errors.Is(err, repository.ErrDateAlreadyBooked):
			// Lost the insert race; the client should refresh availability
			// and offer a new date.
			c.JSON(http.StatusConflict, gin.H{"error": "date was just booked, pick another"})
		default:
			s.log.Error("create booking", "tier", req.TierID, "err", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       booking.ID.String(),
		"tier_id":  booking.TierID.String(),
		"run_date": req.RunDate,
		"status":   string(booking.Status),
	})
}
