package dto

import (
	"time"

	"github.com/Vedant005/SkillBridge-Backend/internal/models"
)

// GigView is a gig decorated with the read-time sentiment label. The label
// is computed on every read and never persisted.
type GigView struct {
	models.Gig
	Sentiment     string  `json:"sentiment"`
	TotalReviews  int     `json:"total_reviews"`
	FeedbackScore float64 `json:"feedback_score"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalGigs   int64 `json:"totalGigs"`
}

type GigListResult struct {
	Gigs       []GigView  `json:"gigs"`
	Pagination Pagination `json:"pagination"`
}

type CreateGigRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	GigID    string `json:"gigId"`

	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Type        string `json:"type"`

	AmountAmount      float64 `json:"amount_amount"`
	HourlyRate        float64 `json:"hourly_rate"`
	Duration          string  `json:"duration"`
	Engagement        string  `json:"engagement"`
	FreelancersToHire int     `json:"freelancers_to_hire"`
	ProposalsTier     string  `json:"proposals_tier"`
	Tier              string  `json:"tier"`

	ClientTotalReviews       int     `json:"client_total_reviews"`
	ClientTotalSpent         float64 `json:"client_total_spent"`
	ClientTotalFeedback      float64 `json:"client_total_feedback"`
	ClientLocationCountry    string  `json:"client_location_country"`
	OccupationsCategoryLabel string  `json:"occupations_category_pref_label"`
	OccupationsOserviceLabel string  `json:"occupations_oservice_pref_label"`

	CreatedOn   *time.Time `json:"created_on,omitempty"`
	PublishedOn *time.Time `json:"published_on,omitempty"`
}

// UpdateGigRequest merges only the supplied fields onto an existing gig.
type UpdateGigRequest struct {
	GigID string `json:"gigId" validate:"required"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Type        *string `json:"type,omitempty"`

	AmountAmount      *float64 `json:"amount_amount,omitempty"`
	HourlyRate        *float64 `json:"hourly_rate,omitempty"`
	Duration          *string  `json:"duration,omitempty"`
	Engagement        *string  `json:"engagement,omitempty"`
	FreelancersToHire *int     `json:"freelancers_to_hire,omitempty"`
	ProposalsTier     *string  `json:"proposals_tier,omitempty"`
	Tier              *string  `json:"tier,omitempty"`

	ClientTotalReviews  *int     `json:"client_total_reviews,omitempty"`
	ClientTotalSpent    *float64 `json:"client_total_spent,omitempty"`
	ClientTotalFeedback *float64 `json:"client_total_feedback,omitempty"`
}

type DeleteGigRequest struct {
	GigID string `json:"gigId" validate:"required"`
}

type ChatResponse struct {
	AIResponse string `json:"ai_response"`
}
