package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Togolese phone numbers: 8 digits, optionally prefixed with +228.
var phoneRegex = regexp.MustCompile(`^(\+228)?[0-9]{8}$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		return name
	})
	validate.RegisterValidation("togophone", func(fl validator.FieldLevel) bool {
		return ValidTogoPhone(fl.Field().String())
	})
}

// ValidTogoPhone reports whether s is a valid Togolese phone number.
// Spaces are ignored, matching how numbers are usually typed
// (+228 XX XX XX XX).
func ValidTogoPhone(s string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(s, " ", ""))
}

// ValidateStruct validates a struct using go-playground/validator.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		validationErrors := make(map[string]string)
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors[err.Field()] = fmt.Sprintf("validation failed: %s", err.Tag())
		}
		return fmt.Errorf("validation failed: %v", validationErrors)
	}
	return nil
}
