package models

// Freelancer is a working account with a public profile and an optional
// resume stored in object storage (Resume holds the public URL, empty when
// no file was uploaded).
type Freelancer struct {
	BaseModel
	FullName        string   `gorm:"not null" json:"fullName"`
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experience_level"`
	HourlyRate      float64  `json:"hourly_rate"`
	Occupation      string   `json:"occupation"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	Description     string   `json:"description"`
	Qualification   string   `json:"qualification"`
	Resume          string   `json:"resume"`
	RefreshToken    string   `json:"-"`
}

func (Freelancer) TableName() string {
	return "freelancers"
}
