package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	FullName   string    `json:"fullName" db:"full_name" example:"Jane Doe"`
	Email      string    `json:"email" db:"email" example:"jane@college.edu"`
	RollNumber string    `json:"rollNumber" db:"roll_number" example:"CS2021042"`
	Department string    `json:"department" db:"department" example:"Computer Science"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
