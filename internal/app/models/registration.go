package models

import "time"

// Registration is the join record representing a student's enrollment in an
// event. It exists only while both sides exist; the schema cascades deletes.
type Registration struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`

	// Related entities (populated when needed)
	Event   *Event   `json:"event,omitempty"`
	Student *Student `json:"student,omitempty"`
}
