package models

import "time"

// Resume records that a user uploaded a resume at a point in time.
// The original file and parsed content are not persisted; parsing is
// re-derived per request.
type Resume struct {
	ID        string    `json:"_id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	UserEmail string    `json:"userEmail" firestore:"userEmail"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ParsedResume is the model's structured reading of a resume
// @Description Structured resume data extracted by the LLM
type ParsedResume struct {
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Projects   []string `json:"projects"`
	Summary    string   `json:"summary"`
}
