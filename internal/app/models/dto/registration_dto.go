package dto

import "time"

// RegistrationResponse represents a registration from the student's point of
// view, with the event it belongs to.
type RegistrationResponse struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"eventId"`
	RegisteredAt time.Time `json:"registeredAt"`

	EventTitle    string    `json:"eventTitle,omitempty"`
	EventStartsAt time.Time `json:"eventStartsAt,omitempty"`
	EventVenue    string    `json:"eventVenue,omitempty"`
}

// ParticipantResponse represents a registration from the admin's point of
// view, with the student who registered.
type ParticipantResponse struct {
	RegistrationID int64     `json:"registrationId"`
	StudentID      int64     `json:"studentId"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	RollNumber     string    `json:"rollNumber"`
	Department     string    `json:"department"`
	RegisteredAt   time.Time `json:"registeredAt"`
}
