package dto

type RegisterClientRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Location string `json:"location" validate:"required"`
}

type UpdateClientRequest struct {
	Location   *string  `json:"location,omitempty"`
	TotalSpent *float64 `json:"total_spent,omitempty"`
}

type AttachGigRequest struct {
	GigID string `json:"gigId" validate:"required"`
}
