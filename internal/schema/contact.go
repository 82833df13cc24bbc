package schema

import "github.com/foliosite/backend/internal/model"

// ContactCreate is the payload accepted from the public contact form.
type ContactCreate struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

// ToModel returns the submission to persist. Read always starts false.
func (in ContactCreate) ToModel() *model.ContactSubmission {
	return &model.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
}
