package dto

import "happy-thoughts-api/internal/models"

// CreateThoughtDTO is the body of POST /thoughts.
// UserName is a pointer so an absent field can be told apart from an empty one.
// The min/max on Message must match models.MinMessageLength and models.MaxMessageLength.
type CreateThoughtDTO struct {
	Message  string  `json:"message"  validate:"required,min=5,max=140" example:"Hello world"`
	UserName *string `json:"userName,omitempty" example:"Anonymous"`
}

type ThoughtPageResponse struct {
	Thoughts         []models.Thought `json:"thoughts"`
	AmountOfThoughts int64            `json:"amountOfThoughts" example:"42"`
}
