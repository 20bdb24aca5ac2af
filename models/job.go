package models

import "time"

// Fallback values for job listings with missing fields
const (
	FallbackJobTitle     = "Unknown Title"
	FallbackCompanyName  = "Unknown Company"
	FallbackCompanyImage = "https://via.placeholder.com/80x80?text=Company"
	FallbackApplyLink    = "#"
)

// JobResult is a single job listing returned by the external search API
// @Description Job listing enriched with coordinates where available
type JobResult struct {
	JobTitle       string   `json:"jobTitle" example:"Backend Engineer"`
	CompanyName    string   `json:"companyName" example:"Acme Corp"`
	CompanyImage   string   `json:"companyImage" example:"https://logo.example.com/acme.png"`
	ApplicationURL string   `json:"applicationUrl" example:"https://jobs.example.com/123"`
	Location       string   `json:"location,omitempty" example:"Berlin Germany"`
	DatePosted     string   `json:"datePosted,omitempty" example:"2024-05-01T00:00:00Z"`
	Latitude       *float64 `json:"latitude,omitempty" example:"52.52"`
	Longitude      *float64 `json:"longitude,omitempty" example:"13.405"`
}

// ShortlistedJob is a saved job reference in Firestore.
// Uniqueness is enforced per (userId, jobTitle, companyName) before insert.
type ShortlistedJob struct {
	ID             string    `json:"_id" firestore:"-"`
	JobTitle       string    `json:"jobTitle" firestore:"jobTitle"`
	CompanyName    string    `json:"companyName" firestore:"companyName"`
	CompanyImage   string    `json:"companyImage" firestore:"companyImage"`
	ApplicationURL string    `json:"applicationUrl" firestore:"applicationUrl"`
	UserID         string    `json:"userId" firestore:"userId"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ShortlistRequest represents a shortlist-add request
// @Description Shortlist a job for a user
type ShortlistRequest struct {
	UserID         string `json:"userId" binding:"required" example:"a1b2c3d4"`
	JobTitle       string `json:"jobTitle" binding:"required" example:"Backend Engineer"`
	CompanyName    string `json:"companyName" binding:"required" example:"Acme Corp"`
	CompanyImage   string `json:"companyImage,omitempty"`
	ApplicationURL string `json:"applicationUrl,omitempty"`
}

// RemoveShortlistRequest identifies the owning user for a shortlist removal
type RemoveShortlistRequest struct {
	UserID string `json:"userId" binding:"required" example:"a1b2c3d4"`
}

// UploadResumeResponse is returned by the resume upload endpoint
// @Description Parsed resume data with matched job listings
type UploadResumeResponse struct {
	ResumeID     string       `json:"resumeId"`
	ParsedResume ParsedResume `json:"parsedResume"`
	Jobs         []JobResult  `json:"jobs"`
}
