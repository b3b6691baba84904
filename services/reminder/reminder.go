package reminder

import (
	"encoding/json"
	"fmt"
	"time"

	"medisched/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReminderSend is the asynq task type for appointment reminders.
const TypeReminderSend = "reminder:send"

// ReminderService schedules appointment reminders.
type ReminderService interface {
	// ScheduleReminder enqueues a reminder to fire ahead of the booked
	// appointment's start time.
	ScheduleReminder(booking *models.BookingResult) error
}

// DefaultReminderService enqueues reminder tasks on the asynq queue.
type DefaultReminderService struct {
	Client   *asynq.Client
	LeadTime time.Duration
	Logger   *zap.Logger
}

func NewReminderService(client *asynq.Client, leadTime time.Duration, logger *zap.Logger) *DefaultReminderService {
	return &DefaultReminderService{Client: client, LeadTime: leadTime, Logger: logger}
}

func (s *DefaultReminderService) ScheduleReminder(booking *models.BookingResult) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("reminder: cannot parse appointment start: %w", err)
	}

	fireAt := start.Add(-s.LeadTime)
	if fireAt.Before(time.Now()) {
		// Appointment starts within the lead window; remind right away.
		fireAt = time.Now()
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID:   booking.BookingID,
		PatientName: booking.PatientName,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		FireAt:      fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("reminder: cannot marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	info, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt))
	if err != nil {
		return fmt.Errorf("reminder: enqueue failed: %w", err)
	}

	s.Logger.Info("appointment reminder scheduled",
		zap.String("bookingId", booking.BookingID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
