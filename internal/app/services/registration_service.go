package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/app/models/dto"
	"github.com/kerem/campushub/internal/app/repositories"
	"github.com/kerem/campushub/internal/pkg/apperrors"
)

// RegistrationService enforces the registration rules: an event must exist
// and not have started, a student registers at most once, and the
// participant limit is never exceeded.
type RegistrationService interface {
	Register(ctx context.Context, studentID, eventID int64) (*models.Registration, error)
	Withdraw(ctx context.Context, studentID, registrationID int64) error
	ListForStudent(ctx context.Context, studentID int64) ([]*dto.RegistrationResponse, error)
	ListForEvent(ctx context.Context, eventID int64) ([]*dto.ParticipantResponse, error)
}

type registrationService struct {
	eventRepo repositories.IEventRepository
	regRepo   repositories.IRegistrationRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	eventRepo repositories.IEventRepository,
	regRepo repositories.IRegistrationRepository,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates a registration for the student on the given event.
// The duplicate pre-check gives a clean error on the common path; the
// repository's transactional insert is the authoritative guard for both
// the unique pair and the participant limit under concurrent requests.
func (s *registrationService) Register(ctx context.Context, studentID, eventID int64) (*models.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.IsPast(s.now()) {
		return nil, apperrors.ErrEventEnded
	}

	exists, err := s.regRepo.Exists(ctx, eventID, studentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyRegistered
	}

	registration, err := s.regRepo.Register(ctx, eventID, studentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("registrationID", registration.ID).
		Int64("eventID", eventID).
		Int64("studentID", studentID).
		Msg("Student registered for event")

	return registration, nil
}

// Withdraw deletes a registration. Only the student who owns the
// registration may withdraw it.
func (s *registrationService) Withdraw(ctx context.Context, studentID, registrationID int64) error {
	registration, err := s.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}

	if registration.StudentID != studentID {
		return apperrors.NewForbiddenError("registration does not belong to this student")
	}

	if err := s.regRepo.Delete(ctx, registrationID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("registrationID", registrationID).
		Int64("eventID", registration.EventID).
		Int64("studentID", studentID).
		Msg("Registration withdrawn")

	return nil
}

// ListForStudent retrieves the student's registrations, newest first
func (s *registrationService) ListForStudent(ctx context.Context, studentID int64) ([]*dto.RegistrationResponse, error) {
	registrations, err := s.regRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RegistrationResponse, 0, len(registrations))
	for _, reg := range registrations {
		resp := &dto.RegistrationResponse{
			ID:           reg.ID,
			EventID:      reg.EventID,
			RegisteredAt: reg.RegisteredAt,
		}
		if reg.Event != nil {
			resp.EventTitle = reg.Event.Title
			resp.EventStartsAt = reg.Event.StartsAt
			resp.EventVenue = reg.Event.Venue
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// ListForEvent retrieves an event's participants, oldest first
func (s *registrationService) ListForEvent(ctx context.Context, eventID int64) ([]*dto.ParticipantResponse, error) {
	// The event must exist even when it has no participants
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	registrations, err := s.regRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ParticipantResponse, 0, len(registrations))
	for _, reg := range registrations {
		resp := &dto.ParticipantResponse{
			RegistrationID: reg.ID,
			StudentID:      reg.StudentID,
			RegisteredAt:   reg.RegisteredAt,
		}
		if reg.Student != nil {
			resp.FullName = reg.Student.FullName
			resp.Email = reg.Student.Email
			resp.RollNumber = reg.Student.RollNumber
			resp.Department = reg.Student.Department
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
