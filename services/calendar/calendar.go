package calendar

import (
	"errors"
	"fmt"
	"time"

	eventRepo "studyhub/database/repository/event"
	"studyhub/models"
	"studyhub/services/tasks"
	"studyhub/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var (
	// ErrEventNotFound signals that no event exists for the given ID.
	ErrEventNotFound = errors.New("event not found")
	// ErrNotEventOwner signals an operation on someone else's event.
	ErrNotEventOwner = errors.New("event belongs to another user")
	// ErrInvalidTimeRange signals EndsAt at or before StartsAt.
	ErrInvalidTimeRange = errors.New("event must end after it starts")
)

type CalendarService interface {
	CreateEvent(userID string, req models.CreateEventRequest) (*models.CalendarEvent, error)
	GetEvent(userID, eventID string) (*models.CalendarEvent, error)
	ListEvents(userID string) ([]models.CalendarEvent, error)
	UpdateEvent(userID string, event models.CalendarEvent) (*models.CalendarEvent, error)
	DeleteEvent(userID, eventID string) error
}

// DefaultCalendarService is the production implementation. Reminders go
// through the asynq queue; the worker delivers the push at fire time.
type DefaultCalendarService struct {
	Repo  eventRepo.EventRepository
	Queue *asynq.Client
}

func (s *DefaultCalendarService) CreateEvent(userID string, req models.CreateEventRequest) (*models.CalendarEvent, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	event := &models.CalendarEvent{
		ID:           uuid.New().String(),
		UserID:       userID,
		RoomID:       req.RoomID,
		Title:        req.Title,
		Description:  req.Description,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		RemindBefore: req.RemindBefore,
	}
	if err := s.Repo.Create(event); err != nil {
		return nil, err
	}

	s.enqueueReminder(event)
	return event, nil
}

// enqueueReminder schedules the push reminder. Queue failures are logged;
// the event itself is already saved.
func (s *DefaultCalendarService) enqueueReminder(event *models.CalendarEvent) {
	if s.Queue == nil || event.RemindBefore <= 0 {
		return
	}
	fireAt := event.StartsAt.Add(-time.Duration(event.RemindBefore) * time.Minute)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		EventID:  event.ID,
		UserID:   event.UserID,
		Title:    event.Title,
		Body:     fmt.Sprintf("%q starts at %s.", event.Title, event.StartsAt.Format("15:04")),
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("Failed to build reminder task", zap.String("eventID", event.ID), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("Failed to enqueue reminder", zap.String("eventID", event.ID), zap.Error(err))
	}
}

func (s *DefaultCalendarService) GetEvent(userID, eventID string) (*models.CalendarEvent, error) {
	event, err := s.Repo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.UserID != userID {
		return nil, ErrNotEventOwner
	}
	return event, nil
}

func (s *DefaultCalendarService) ListEvents(userID string) ([]models.CalendarEvent, error) {
	return s.Repo.GetByUser(userID)
}

func (s *DefaultCalendarService) UpdateEvent(userID string, event models.CalendarEvent) (*models.CalendarEvent, error) {
	existing, err := s.GetEvent(userID, event.ID)
	if err != nil {
		return nil, err
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	event.UserID = existing.UserID
	event.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(&event); err != nil {
		return nil, err
	}

	// Reschedule when the start or offset moved.
	if event.StartsAt != existing.StartsAt || event.RemindBefore != existing.RemindBefore {
		s.enqueueReminder(&event)
	}
	return &event, nil
}

func (s *DefaultCalendarService) DeleteEvent(userID, eventID string) error {
	if _, err := s.GetEvent(userID, eventID); err != nil {
		return err
	}
	return s.Repo.Delete(eventID)
}
