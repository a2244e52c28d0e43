package models

import "time"

// Gig is a marketplace listing owned by a client. GigID is the external
// identifier used in URLs; ID stays an internal surrogate key. The client_*
// columns are denormalized reputation figures carried on each listing;
// ClientTotalFeedback feeds the read-time sentiment label and is never
// stored as a label itself.
type Gig struct {
	BaseModel
	GigID    string `gorm:"uniqueIndex;not null" json:"gigId"`
	ClientID string `gorm:"index;not null" json:"client_id"`

	Title       string `gorm:"not null" json:"title"`
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

	CreatedOn   time.Time `json:"created_on"`
	PublishedOn time.Time `json:"published_on"`
}

func (Gig) TableName() string {
	return "gigs"
}
