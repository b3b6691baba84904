package handlers

import (
	"net/http"

	"medisched/models"
	"medisched/services/reminder"
	"medisched/services/schedule"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the office calendar: single-date availability and
// appointment booking.
type ScheduleHandler struct {
	Office    schedule.ScheduleStore
	Reminders reminder.ReminderService
	Logger    *zap.Logger
}

func NewScheduleHandler(office schedule.ScheduleStore, reminders reminder.ReminderService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Office: office, Reminders: reminders, Logger: logger}
}

// ListAvailabilityHandler handles GET /api/appointments/availability?date=YYYY-MM-DD.
func (h *ScheduleHandler) ListAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Query parameter 'date' is required.", schedule.CodeInvalidDateFormat)
		return
	}

	report, err := h.Office.ListAvailability(date)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// BookAppointmentHandler handles POST /api/appointments/book.
func (h *ScheduleHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Office.BookAppointment(req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	// Reminder scheduling is best effort; the booking is already committed.
	if h.Reminders != nil {
		if err := h.Reminders.ScheduleReminder(result); err != nil {
			h.Logger.Warn("failed to schedule appointment reminder",
				zap.String("bookingId", result.BookingID), zap.Error(err))
		}
	}

	h.Logger.Info("appointment booked",
		zap.String("bookingId", result.BookingID),
		zap.String("date", result.Date),
		zap.Int("durationSlots", result.DurationSlots))
	c.JSON(http.StatusCreated, result)
}

// respondScheduleError maps an engine error kind to an HTTP status and body.
func respondScheduleError(c *gin.Context, err error) {
	se, ok := schedule.AsScheduleError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if se.Code == schedule.CodeSlotAlreadyBooked {
		c.JSON(http.StatusConflict, gin.H{
			"message":         se.Message,
			"code":            se.Code,
			"conflictingSlot": se.ConflictingSlot,
			"existingPatient": se.ExistingOccupant,
		})
		return
	}
	utils.JSONError(c, statusForCode(se.Code), se.Message, se.Code)
}

func statusForCode(code string) int {
	switch code {
	case schedule.CodeDateNotAvailable:
		return http.StatusNotFound
	case schedule.CodeSlotAlreadyBooked:
		return http.StatusConflict
	case schedule.CodeBookingNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusBadRequest
	}
}
