package models

import "time"

// Event represents a campus event students can register for
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	Venue       string    `json:"venue" db:"venue"`
	Department  string    `json:"department" db:"department"`
	// MaxParticipants of 0 means unlimited
	MaxParticipants int       `json:"maxParticipants" db:"max_participants"`
	CreatedBy       int64     `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	// Populated when needed
	ParticipantCount int `json:"participantCount"`
}

// IsFull reports whether the event has reached its participant limit.
func (e *Event) IsFull(registered int) bool {
	return e.MaxParticipants > 0 && registered >= e.MaxParticipants
}

// IsPast reports whether the event has already started.
func (e *Event) IsPast(now time.Time) bool {
	return e.StartsAt.Before(now)
}
