package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kerem/campushub/internal/app/models"
	"github.com/kerem/campushub/internal/app/models/dto"
	"github.com/kerem/campushub/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the guarantees of the real
// repositories: unique constraints, capacity enforcement inside Register,
// and cascading deletes, all under a single mutex so concurrent tests see
// the same atomicity the database transaction provides.

type fakeStudentRepo struct {
	mu       sync.Mutex
	nextID   int64
	students map[int64]*models.Student

	// shared with the registration fake so student deletion cascades
	regs *fakeRegistrationRepo
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: make(map[int64]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.students {
		if existing.Email == student.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if existing.RollNumber == student.RollNumber {
			return 0, apperrors.ErrRollNumberExists
		}
	}
	clone := *student
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.students[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *student
	return &clone, nil
}

func (r *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, student := range r.students {
		if student.Email == email {
			clone := *student
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, student := range r.students {
		if student.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) RollNumberExists(_ context.Context, rollNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, student := range r.students {
		if student.RollNumber == rollNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Password = hashedPassword
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.students[id]; !ok {
		r.mu.Unlock()
		return apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	r.mu.Unlock()

	// Cascade outside the lock; list operations take the locks in the other order
	if r.regs != nil {
		r.regs.deleteByStudentID(id)
	}
	return nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	nextID int64
	admins map[int64]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{nextID: 1, admins: make(map[int64]*models.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Username == admin.Username {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
	}
	clone := *admin
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.admins[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	clone := *admin
	return &clone, nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Username == username {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r *fakeAdminRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.admins), nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID int64
	events map[int64]*models.Event

	// shared with the registration fake so event deletion cascades
	regs *fakeRegistrationRepo
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, events: make(map[int64]*models.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *event
	clone.ID = r.nextID
	clone.CreatedAt = time.Now()
	r.events[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	clone := *event
	return &clone, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	clone := *event
	r.events[event.ID] = &clone
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.events[id]; !ok {
		r.mu.Unlock()
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	r.mu.Unlock()

	// Cascade outside the lock; Register takes the locks in the other order
	if r.regs != nil {
		r.regs.deleteByEventID(id)
	}
	return nil
}

func (r *fakeEventRepo) List(_ context.Context, filter dto.EventFilter) ([]*models.Event, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*models.Event
	now := time.Now()
	for _, event := range r.events {
		if filter.Department != "" && event.Department != filter.Department {
			continue
		}
		if filter.UpcomingOnly && event.StartsAt.Before(now) {
			continue
		}
		clone := *event
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartsAt.Before(matched[j].StartsAt) })
	return matched, int64(len(matched)), nil
}

type fakeRegistrationRepo struct {
	mu            sync.Mutex
	nextID        int64
	registrations map[int64]*models.Registration

	events   *fakeEventRepo
	students *fakeStudentRepo
}

func newFakeRegistrationRepo(events *fakeEventRepo, students *fakeStudentRepo) *fakeRegistrationRepo {
	r := &fakeRegistrationRepo{
		nextID:        1,
		registrations: make(map[int64]*models.Registration),
		events:        events,
		students:      students,
	}
	if events != nil {
		events.regs = r
	}
	if students != nil {
		students.regs = r
	}
	return r
}

// Register mirrors the transactional insert: the capacity check and the
// insert happen under one lock.
func (r *fakeRegistrationRepo) Register(ctx context.Context, eventID, studentID int64) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, err := r.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, reg := range r.registrations {
		if reg.EventID == eventID {
			if reg.StudentID == studentID {
				return nil, apperrors.ErrAlreadyRegistered
			}
			count++
		}
	}

	if event.IsFull(count) {
		return nil, apperrors.ErrEventFull
	}

	reg := &models.Registration{
		ID:           r.nextID,
		EventID:      eventID,
		StudentID:    studentID,
		RegisteredAt: time.Now(),
	}
	r.registrations[reg.ID] = reg
	r.nextID++
	clone := *reg
	return &clone, nil
}

func (r *fakeRegistrationRepo) GetByID(_ context.Context, id int64) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	clone := *reg
	return &clone, nil
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.registrations[id]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	delete(r.registrations, id)
	return nil
}

func (r *fakeRegistrationRepo) Exists(_ context.Context, eventID, studentID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.registrations {
		if reg.EventID == eventID && reg.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRegistrationRepo) CountByEventID(_ context.Context, eventID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, reg := range r.registrations {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRegistrationRepo) CountsByEventIDs(_ context.Context, eventIDs []int64) (map[int64]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[int64]int, len(eventIDs))
	for _, reg := range r.registrations {
		counts[reg.EventID]++
	}
	return counts, nil
}

func (r *fakeRegistrationRepo) ListByStudentID(ctx context.Context, studentID int64) ([]*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*models.Registration
	for _, reg := range r.registrations {
		if reg.StudentID != studentID {
			continue
		}
		clone := *reg
		if event, err := r.events.GetByID(ctx, reg.EventID); err == nil {
			clone.Event = event
		}
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].RegisteredAt.Equal(matched[j].RegisteredAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].RegisteredAt.After(matched[j].RegisteredAt)
	})
	return matched, nil
}

func (r *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*models.Registration
	for _, reg := range r.registrations {
		if reg.EventID != eventID {
			continue
		}
		clone := *reg
		if r.students != nil {
			if student, err := r.students.GetByID(ctx, reg.StudentID); err == nil {
				clone.Student = student
			}
		}
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].RegisteredAt.Equal(matched[j].RegisteredAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].RegisteredAt.Before(matched[j].RegisteredAt)
	})
	return matched, nil
}

func (r *fakeRegistrationRepo) deleteByEventID(eventID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, reg := range r.registrations {
		if reg.EventID == eventID {
			delete(r.registrations, id)
		}
	}
}

func (r *fakeRegistrationRepo) deleteByStudentID(studentID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, reg := range r.registrations {
		if reg.StudentID == studentID {
			delete(r.registrations, id)
		}
	}
}
