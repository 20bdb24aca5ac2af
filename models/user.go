package models

import "time"

// User represents a user account in Firestore
// @Description User account information
type User struct {
	ID              string    `json:"_id" firestore:"-" example:"a1b2c3d4"`
	Name            string    `json:"name" firestore:"name" example:"John Doe"`
	Email           string    `json:"email" firestore:"email" example:"user@example.com"`
	Password        string    `json:"-" firestore:"password"` // Hashed password, never sent to client
	Resumes         []string  `json:"resumes" firestore:"resumes"`
	ShortlistedJobs []string  `json:"shortlistedJobs" firestore:"shortlistedJobs"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Summary returns the public fields of a user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserSummary is the public projection of a user
// @Description Public user fields returned by auth endpoints
type UserSummary struct {
	ID    string `json:"_id" example:"a1b2c3d4"`
	Name  string `json:"name" example:"John Doe"`
	Email string `json:"email" example:"user@example.com"`
}

// Profile is a user with the referenced documents populated
// @Description User profile with populated resumes and shortlisted jobs
type Profile struct {
	ID              string           `json:"_id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Resumes         []Resume         `json:"resumes"`
	ShortlistedJobs []ShortlistedJob `json:"shortlistedJobs"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// SignupRequest represents a signup request
// @Description User signup request
type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// LoginRequest represents a login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthResponse represents an authentication response
// @Description Authentication response with public user fields and session token
type AuthResponse struct {
	User    UserSummary `json:"user"`
	Token   string      `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Message string      `json:"message,omitempty" example:"Login successful"`
}
