package validators

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func ParseLogin(body []byte) (LoginRequest, error) {
	var r LoginRequest
	if err := decode(body, &r); err != nil {
		return LoginRequest{}, err
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if err := validationFailure("login", r.Validate()); err != nil {
		return LoginRequest{}, err
	}
	return r, nil
}

// SeedRequest creates or resets the admin account. The secret is checked by the caller
// before the rest of the request is validated.
type SeedRequest struct {
	Secret   string `json:"secret"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r SeedRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required, validation.RuneLength(8, 128)),
		validation.Field(&r.Name, validation.RuneLength(0, 120)),
	)
}

func ParseSeed(body []byte) (SeedRequest, error) {
	var r SeedRequest
	if err := decode(body, &r); err != nil {
		return SeedRequest{}, err
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	if err := validationFailure("seed", r.Validate()); err != nil {
		return SeedRequest{}, err
	}
	return r, nil
}
