package dto

import "time"

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	Venue       string    `json:"venue" binding:"required"`
	Department  string    `json:"department" binding:"required"`
	// 0 means unlimited
	MaxParticipants int `json:"maxParticipants" binding:"gte=0"`
}

// UpdateEventRequest represents event update data
type UpdateEventRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	StartsAt        time.Time `json:"startsAt" binding:"required"`
	Venue           string    `json:"venue" binding:"required"`
	Department      string    `json:"department" binding:"required"`
	MaxParticipants int       `json:"maxParticipants" binding:"gte=0"`
}

// EventFilter narrows event listings
type EventFilter struct {
	Department   string
	UpcomingOnly bool
	Page         int
	Size         int
}

// EventResponse represents an event with its current registration count
type EventResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartsAt         time.Time `json:"startsAt"`
	Venue            string    `json:"venue"`
	Department       string    `json:"department"`
	MaxParticipants  int       `json:"maxParticipants"`
	ParticipantCount int       `json:"participantCount"`
	CreatedBy        int64     `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
}
