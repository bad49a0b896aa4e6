// Package validation adapts go-playground/validator to the API's aggregate
// error contract: every violated rule is reported at once, not just the
// first, so a client can fix everything in one round trip.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "fittrack/internal/errors"
)

// TagTypeMismatch is the pseudo-tag handed to RuleMessage when the JSON
// decoder rejected a field's type before any validate tag could run.
const TagTypeMismatch = "type"

// RuleMessager lets a request struct translate a failed field/tag pair into
// its user-facing rule message.
type RuleMessager interface {
	RuleMessage(field, tag string) string
}

// Validator implements echo.Validator on top of go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New builds the shared validator with the custom notblank rule, which
// rejects strings that are empty after trimming.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{validate: v}
}

// Validate checks i and, on failure, returns an InvalidInput error listing
// every violated rule in field order.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, message(i, fe))
	}
	return apperrors.InvalidInput(details...)
}

// ValidateDecoded checks i after the JSON decoder hit a type mismatch on
// jsonField. The decoder leaves that field at its zero value, so its
// "required" violation is replaced by the field's own type-mismatch rule
// message; every other violation still aggregates as usual.
func (v *Validator) ValidateDecoded(i interface{}, jsonField string) error {
	field := fieldForJSONName(i, jsonField)
	mismatch := ""
	if m, ok := i.(RuleMessager); ok && field != "" {
		mismatch = m.RuleMessage(field, TagTypeMismatch)
	}
	if mismatch == "" {
		return apperrors.InvalidInput("Request body must be valid JSON")
	}

	verrs, ok := v.validate.Struct(i).(validator.ValidationErrors)
	if !ok {
		return apperrors.InvalidInput(mismatch)
	}

	details := make([]string, 0, len(verrs)+1)
	replaced := false
	for _, fe := range verrs {
		if fe.Field() == field {
			details = append(details, mismatch)
			replaced = true
			continue
		}
		details = append(details, message(i, fe))
	}
	if !replaced {
		details = append(details, mismatch)
	}
	return apperrors.InvalidInput(details...)
}

// fieldForJSONName maps a JSON object key back to the struct field it binds.
func fieldForJSONName(i interface{}, name string) string {
	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	for idx := 0; idx < t.NumField(); idx++ {
		f := t.Field(idx)
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name || (tag == "" && f.Name == name) {
			return f.Name
		}
	}
	return ""
}

func message(i interface{}, fe validator.FieldError) string {
	if m, ok := i.(RuleMessager); ok {
		if msg := m.RuleMessage(fe.Field(), fe.Tag()); msg != "" {
			return msg
		}
	}
	return fe.Field() + " is invalid"
}
