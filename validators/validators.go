// Package validators decodes admin and public request bodies into models. Every Parse
// function is total: it returns either a record ready to persist or an *errs.ApiErr.
package validators

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/rpupo63/studio-cms-backend/errs"
	"github.com/rpupo63/studio-cms-backend/normalize"
)

// mediaURL accepts an absolute URL with a scheme or a root-relative path such as
// /uploads/cover-1700000000000.png. Empty values pass; pair with Required when needed.
var mediaURL = validation.By(func(value interface{}) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		if _, err := url.ParseRequestURI(s); err == nil {
			return nil
		}
		return errors.New("must be a valid URL")
	}
	if err := is.RequestURL.Validate(s); err != nil {
		return errors.New("must be a valid URL")
	}
	return nil
})

// sluggable rejects titles that reduce to an empty slug, such as "!!!".
var sluggable = validation.By(func(value interface{}) error {
	v, _ := validation.Indirect(value)
	s, _ := v.(string)
	if s == "" || normalize.BuildSlug(s) != "" {
		return nil
	}
	return errors.New("must contain letters or digits")
})

// StringList decodes either a JSON array of strings or a comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*l = normalize.ParseCSVToArray(text)
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*l = values
	return nil
}

func decode(body []byte, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}

// optional maps the empty string to nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func enum(values []string) validation.Rule {
	allowed := make([]interface{}, len(values))
	for i, v := range values {
		allowed[i] = v
	}
	return validation.In(allowed...).Error("must be one of " + strings.Join(values, ", "))
}

// validationFailure converts ozzo errors into an ApiErr carrying a flat field map.
func validationFailure(entity string, err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string)
		flatten("", fieldErrs, fields)
		return errs.NewValidationError(entity, fields)
	}
	return errs.NewInternalErrorWithCause("validating "+entity, err)
}

func flatten(prefix string, fieldErrs validation.Errors, out map[string]string) {
	for name, err := range fieldErrs {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(key, nested, out)
			continue
		}
		out[key] = err.Error()
	}
}
