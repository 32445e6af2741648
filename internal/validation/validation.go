// Package validation wraps go-playground/validator with the field rules the
// API exposes and turns failures into errs.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired      = "This field is required."
	MsgFutureYear    = "Нельзя ставить год больше, чем сейчас"
	MsgScoreRange    = "Оценка может быть только от 1 до 10!"
	MsgUsernameMe    = "Использовать имя 'me' в качестве username запрещено."
	MsgUsernameChars = "Имя пользователя может содержать только буквы, цифры и символы @/./+/-/_"
	MsgEmail         = "Enter a valid email address."
	MsgURL           = "Enter a valid URL."
	MsgSlug          = "Enter a valid “slug” consisting of letters, numbers, underscores or hyphens."
)

// ReservedUsername cannot be registered because it collides with /users/me/.
const ReservedUsername = "me"

var (
	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return ValidUsername(fl.Field().String()) == ""
	})
	mustRegister(v, "usernamechars", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	// The bound moves with the calendar, so it is read on every call.
	mustRegister(v, "notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})
	mustRegister(v, "score", func(fl validator.FieldLevel) bool {
		score := fl.Field().Int()
		return score >= models.ScoreMin && score <= models.ScoreMax
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidUsername returns an empty string for an acceptable username or the
// message explaining why it was rejected.
func ValidUsername(username string) string {
	if username == ReservedUsername {
		return MsgUsernameMe
	}
	if !usernamePattern.MatchString(username) {
		return MsgUsernameChars
	}
	return ""
}

// Struct validates s and returns *errs.ValidationError on failure.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	result := errs.NewValidation()
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "email":
		return MsgEmail
	case "url", "url|len=0":
		return MsgURL
	case "slug":
		return MsgSlug
	case "notfuture":
		return MsgFutureYear
	case "score":
		return MsgScoreRange
	case "username":
		if s, ok := fe.Value().(string); ok {
			return ValidUsername(s)
		}
		return MsgUsernameChars
	case "usernamechars":
		return MsgUsernameChars
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
