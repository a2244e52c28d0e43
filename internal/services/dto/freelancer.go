package dto

import "io"

// RegisterFreelancerRequest arrives as a multipart form; the resume file,
// when present, is passed alongside as a reader plus filename.
type RegisterFreelancerRequest struct {
	FullName        string   `json:"fullName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	Location        string   `json:"location" validate:"required"`
	ExperienceLevel string   `json:"experience_level" validate:"required"`
	HourlyRate      float64  `json:"hourly_rate" validate:"gt=0"`
	Occupation      string   `json:"occupation" validate:"required"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	Description     string   `json:"description" validate:"required"`
	Qualification   string   `json:"qualification" validate:"required"`
}

type ResumeUpload struct {
	File     io.Reader
	Filename string
	Size     int64
}

type UpdateFreelancerRequest struct {
	FullName        *string  `json:"fullName,omitempty"`
	Location        *string  `json:"location,omitempty"`
	ExperienceLevel *string  `json:"experience_level,omitempty"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	Occupation      *string  `json:"occupation,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Qualification   *string  `json:"qualification,omitempty"`
}
