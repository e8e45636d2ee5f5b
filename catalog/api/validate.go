package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs every rule and reports one message per failing
// field, callers get the full list instead of the first failure.
func validateStruct(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid request body"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return msgs
}

func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FirstName":
		return "Please enter a first name."
	case "LastName":
		return "Please enter a last name."
	case "EmailAddress":
		if fe.Tag() == "email" {
			return "Please enter a valid email format."
		}
		return "Please enter an email."
	case "Password":
		if fe.Tag() == "max" {
			return "Please enter a password of 72 characters or fewer."
		}
		return "Please enter a password."
	case "Title":
		return "Please enter a title."
	case "Description":
		return "Please enter a description."
	}
	return fmt.Sprintf("Please provide a value for %q.", fe.Field())
}
