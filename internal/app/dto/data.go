package dto

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate = newValidator()
	trans    ut.Translator
)

var zipCodePattern = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)

// custom tags and the message each one reports
var customTranslations = map[string]string{
	"zipcode":         "{0} must be a 5 digit or 5 digit+4 zip code, like 12345 or 12345-6789",
	"positive_amount": "{0} must be a number greater than 0",
	"hour_of_day":     "{0} must be two digits between 00 and 23",
	"minute_of_hour":  "{0} must be two digits between 00 and 59",
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

// FieldReason is a single failed check, named by the json field it belongs to.
type FieldReason struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		amount, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && !math.IsInf(amount, 0) && amount > 0
	})
	_ = v.RegisterValidation("hour_of_day", func(fl validator.FieldLevel) bool {
		return isTwoDigitsWithin(fl.Field().String(), 23)
	})
	_ = v.RegisterValidation("minute_of_hour", func(fl validator.FieldLevel) bool {
		return isTwoDigitsWithin(fl.Field().String(), 59)
	})

	return v
}

func isTwoDigitsWithin(s string, max int) bool {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return false
	}

	n, _ := strconv.Atoi(s)
	return n <= max
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	for tag, message := range customTranslations {
		if err := registerTranslation(tag, message); err != nil {
			return err
		}
	}

	return nil
}

func registerTranslation(tag, message string) error {
	return Validate.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, message, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

// ValidateAll checks every field of req and reports each failing one.
// The returned error is only set when req could not be validated at all.
func ValidateAll(req interface{}) ([]FieldReason, error) {
	err := Validate.Struct(req)
	if err == nil {
		return nil, nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	reasons := make([]FieldReason, 0, len(ve))
	for _, fe := range ve {
		reasons = append(reasons, FieldReason{
			Field:  fe.Field(),
			Reason: fe.Translate(trans),
		})
	}

	return reasons, nil
}
