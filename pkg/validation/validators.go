package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("list_name", ListName)
	_ = v.RegisterValidation("username", Username)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ListName validates a task list name: non-blank after trimming and at
// most 255 characters. Byte length is not what matters here, names are
// user-visible text, so count runes.
func ListName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" {
		return false
	}
	return utf8.RuneCountInString(val) <= 255
}

// Username validates a login name: letters, digits, dot, underscore and
// hyphen, 3-32 characters.
func Username(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	n := utf8.RuneCountInString(val)
	if n < 3 || n > 32 {
		return false
	}
	for _, r := range val {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
