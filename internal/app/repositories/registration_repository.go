package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/db"
	"github.com/kerem/campushub/internal/pkg/apperrors"
	"github.com/kerem/campushub/internal/pkg/dberrors"
)

// IRegistrationRepository defines the interface for registration database operations
type IRegistrationRepository interface {
	Register(ctx context.Context, eventID, studentID int64) (*models.Registration, error)
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, eventID, studentID int64) (bool, error)
	CountByEventID(ctx context.Context, eventID int64) (int, error)
	CountsByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]*models.Registration, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error)
}

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register creates a registration for (eventID, studentID), enforcing the
// participant limit. The capacity check and insert run in one transaction
// that locks the event row, so two requests racing for the last slot
// serialize; the unique (event_id, student_id) constraint remains the
// authoritative duplicate guard.
func (r *RegistrationRepository) Register(ctx context.Context, eventID, studentID int64) (*models.Registration, error) {
	var registration *models.Registration

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var event models.Event
		err := tx.QueryRow(ctx,
			`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`,
			eventID).Scan(&event.MaxParticipants)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error locking event row: %w", err)
		}

		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM registrations WHERE event_id = $1`,
			eventID).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting registrations: %w", err)
		}
		if event.IsFull(count) {
			return apperrors.ErrEventFull
		}

		reg := &models.Registration{EventID: eventID, StudentID: studentID}
		err = tx.QueryRow(ctx,
			`INSERT INTO registrations (event_id, student_id)
			 VALUES ($1, $2)
			 RETURNING id, registered_at`,
			eventID, studentID).Scan(&reg.ID, &reg.RegisteredAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "registrations_event_student_key") {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("error creating registration: %w", err)
		}

		registration = reg
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := squirrel.Select("id", "event_id", "student_id", "registered_at").
		From("registrations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var reg models.Registration
	err = r.db.QueryRow(ctx, sql, args...).Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return &reg, nil
}

// Delete removes a registration
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("registrations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// Exists checks if a registration for (eventID, studentID) is present
func (r *RegistrationRepository) Exists(ctx context.Context, eventID, studentID int64) (bool, error) {
	query := squirrel.Select("1").
		From("registrations").
		Where(squirrel.Eq{"event_id": eventID, "student_id": studentID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// CountByEventID retrieves the number of registrations for an event
func (r *RegistrationRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("registrations").
		Where(squirrel.Eq{"event_id": eventID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// CountsByEventIDs retrieves the number of registrations for multiple events
func (r *RegistrationRepository) CountsByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int, error) {
	if len(eventIDs) == 0 {
		return make(map[int64]int), nil
	}

	query := squirrel.Select("event_id", "COUNT(*)").
		From("registrations").
		Where(squirrel.Eq{"event_id": eventIDs}).
		GroupBy("event_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var eventID int64
		var count int
		if err := rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[eventID] = count
	}

	return counts, nil
}

// ListByStudentID retrieves a student's registrations with event details,
// newest first
func (r *RegistrationRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*models.Registration, error) {
	query := squirrel.Select(
		"r.id", "r.event_id", "r.student_id", "r.registered_at",
		"e.title", "e.starts_at", "e.venue", "e.department",
	).
		From("registrations r").
		Join("events e ON e.id = r.event_id").
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.registered_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var reg models.Registration
		var event models.Event
		err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.StudentID, &reg.RegisteredAt,
			&event.Title, &event.StartsAt, &event.Venue, &event.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		event.ID = reg.EventID
		reg.Event = &event
		registrations = append(registrations, &reg)
	}

	return registrations, nil
}

// ListByEventID retrieves an event's registrations with student details,
// oldest first
func (r *RegistrationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error) {
	query := squirrel.Select(
		"r.id", "r.event_id", "r.student_id", "r.registered_at",
		"s.full_name", "s.email", "s.roll_number", "s.department",
	).
		From("registrations r").
		Join("students s ON s.id = r.student_id").
		Where(squirrel.Eq{"r.event_id": eventID}).
		OrderBy("r.registered_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var reg models.Registration
		var student models.Student
		err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.StudentID, &reg.RegisteredAt,
			&student.FullName, &student.Email, &student.RollNumber, &student.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		student.ID = reg.StudentID
		reg.Student = &student
		registrations = append(registrations, &reg)
	}

	return registrations, nil
}
