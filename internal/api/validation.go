package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// signupValidationMessage maps the first validator failure to the
// human-readable messages the frontend expects. First failure wins, in
// struct field order.
func signupValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	missing := map[string]bool{}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing[fe.Field()] = true
		}
	}
	if missing["Username"] && missing["Firstname"] && missing["Password"] && missing["ConfirmPassword"] {
		return "Fields are required"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Username":
		return "Username is required"
	case "Firstname":
		return "Firstname is required"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 8 characters"
		}
		return "Password is required"
	case "ConfirmPassword":
		if fe.Tag() == "eqfield" {
			return "Password not match"
		}
		return "Confirm password is required"
	}
	return "Invalid request body"
}
