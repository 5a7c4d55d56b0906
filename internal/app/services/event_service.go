package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/app/models/dto"
	"github.com/kerem/campushub/internal/app/repositories"
	"github.com/kerem/campushub/internal/pkg/apperrors"
)

// EventService handles event management. Creation, update and delete are
// admin-scoped; reads are open to both roles.
type EventService interface {
	Create(ctx context.Context, adminID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, adminID, eventID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, adminID, eventID int64) error
	Get(ctx context.Context, eventID int64) (*dto.EventResponse, error)
	List(ctx context.Context, filter dto.EventFilter) ([]*dto.EventResponse, int64, error)
}

type eventService struct {
	eventRepo repositories.IEventRepository
	regRepo   repositories.IRegistrationRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repositories.IEventRepository,
	regRepo repositories.IRegistrationRepository,
	logger zerolog.Logger,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		logger:    logger,
	}
}

func validateEventFields(title, description, venue, department string, maxParticipants int) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidationError("description cannot be empty")
	}
	if strings.TrimSpace(venue) == "" {
		return apperrors.NewValidationError("venue cannot be empty")
	}
	if strings.TrimSpace(department) == "" {
		return apperrors.NewValidationError("department cannot be empty")
	}
	if maxParticipants < 0 {
		return apperrors.NewValidationError("participant limit cannot be negative")
	}
	return nil
}

// Create persists a new event owned by the given admin
func (s *eventService) Create(ctx context.Context, adminID int64, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := validateEventFields(req.Title, req.Description, req.Venue, req.Department, req.MaxParticipants); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:           req.Title,
		Description:     req.Description,
		StartsAt:        req.StartsAt,
		Venue:           req.Venue,
		Department:      req.Department,
		MaxParticipants: req.MaxParticipants,
		CreatedBy:       adminID,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	s.logger.Info().Int64("eventID", id).Int64("adminID", adminID).Str("title", event.Title).Msg("Event created")

	return toEventResponse(event, 0), nil
}

// Update rewrites an event's fields. Only the admin who created the event
// may update it.
func (s *eventService) Update(ctx context.Context, adminID, eventID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if err := validateEventFields(req.Title, req.Description, req.Venue, req.Department, req.MaxParticipants); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatedBy != adminID {
		return nil, apperrors.NewForbiddenError("only the admin who created this event can modify it")
	}

	event.Title = req.Title
	event.Description = req.Description
	event.StartsAt = req.StartsAt
	event.Venue = req.Venue
	event.Department = req.Department
	event.MaxParticipants = req.MaxParticipants

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	count, err := s.regRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventID", eventID).Int64("adminID", adminID).Msg("Event updated")

	return toEventResponse(event, count), nil
}

// Delete removes an event and, via cascade, its registrations. Only the
// admin who created the event may delete it.
func (s *eventService) Delete(ctx context.Context, adminID, eventID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if event.CreatedBy != adminID {
		return apperrors.NewForbiddenError("only the admin who created this event can delete it")
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}

	s.logger.Info().Int64("eventID", eventID).Int64("adminID", adminID).Str("title", event.Title).Msg("Event deleted")
	return nil
}

// Get retrieves a single event with its registration count
func (s *eventService) Get(ctx context.Context, eventID int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	count, err := s.regRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return toEventResponse(event, count), nil
}

// List retrieves events matching the filter, decorated with registration counts
func (s *eventService) List(ctx context.Context, filter dto.EventFilter) ([]*dto.EventResponse, int64, error) {
	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	eventIDs := make([]int64, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}

	counts, err := s.regRepo.CountsByEventIDs(ctx, eventIDs)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toEventResponse(event, counts[event.ID]))
	}

	return responses, total, nil
}

func toEventResponse(event *models.Event, participantCount int) *dto.EventResponse {
	return &dto.EventResponse{
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		StartsAt:         event.StartsAt,
		Venue:            event.Venue,
		Department:       event.Department,
		MaxParticipants:  event.MaxParticipants,
		ParticipantCount: participantCount,
		CreatedBy:        event.CreatedBy,
		CreatedAt:        event.CreatedAt,
	}
}
