package models

// Client is a hiring account. PasswordHash and RefreshToken never leave
// the API; json:"-" keeps them out of every response body.
type Client struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Location     string  `json:"location"`
	TotalSpent   float64 `json:"total_spent"`
	RefreshToken string  `json:"-"`

	Gigs []Gig `gorm:"foreignKey:ClientID" json:"gigs,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
