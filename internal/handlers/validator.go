package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// failedTag returns the tag of the rule req breaks, or "" when req is valid.
// A missing required field wins over any other failure.
func failedTag(req any) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "invalid"
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return "required"
		}
	}
	return ve[0].Tag()
}
