package validators

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/rpupo63/studio-cms-backend/models"
)

type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (in ContactMessageInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(2, 120)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Message, validation.Required, validation.RuneLength(10, 0)),
	)
}

// ParseContactMessage decodes a public contact form submission. New messages are unread.
func ParseContactMessage(body []byte) (models.ContactMessage, error) {
	var in ContactMessageInput
	if err := decode(body, &in); err != nil {
		return models.ContactMessage{}, err
	}
	trimAll(&in.Name, &in.Email, &in.Message)
	if err := validationFailure("message", in.Validate()); err != nil {
		return models.ContactMessage{}, err
	}

	return models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}, nil
}

type MessageStatusInput struct {
	IsRead *bool `json:"isRead"`
}

func (in MessageStatusInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.IsRead, validation.NotNil),
	)
}

// ParseMessageStatus decodes the read-flag toggle for a contact message.
func ParseMessageStatus(body []byte) (bool, error) {
	var in MessageStatusInput
	if err := decode(body, &in); err != nil {
		return false, err
	}
	if err := validationFailure("message", in.Validate()); err != nil {
		return false, err
	}
	return *in.IsRead, nil
}
