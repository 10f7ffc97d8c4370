// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Colors must be "#" followed by exactly six hex digits.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Register registers all custom validators with the Gin binding engine and
// makes validation errors report JSON field names instead of Go field names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("savings_transaction_type", validateSavingsTransactionType)
	}
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "income":
		return true
	}
	return false
}

func validateSavingsTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "deposit", "withdrawal":
		return true
	}
	return false
}
