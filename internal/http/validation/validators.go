// Package validation validates decoded form structs with go-playground/validator and
// turns failures into per-field, user-facing messages keyed by form field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/domain/model"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// engine returns the shared validator with form-tag field names and the custom tags registered.
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		mustRegister(v, "date", func(fl validator.FieldLevel) bool {
			_, err := model.ParseDate(strings.TrimSpace(fl.Field().String()))
			return err == nil
		})
		mustRegister(v, "role", func(fl validator.FieldLevel) bool {
			_, err := domainauth.ParseRole(fl.Field().String())
			return err == nil
		})
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Struct validates s and returns field errors keyed by the `form` tag name.
// A nil map means the struct is valid.
func Struct(s any) map[string]string {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	labels := labelsOf(s)
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		label, ok := labels[fe.StructField()]
		if !ok {
			label = FieldLabel(field)
		}
		out[field] = message(label, fe)
	}
	return out
}

// FieldLabel turns a form field name into a readable label ("start_date" -> "Start Date").
func FieldLabel(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// labelsOf collects `label` tag overrides keyed by Go field name.
func labelsOf(s any) map[string]string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	labels := map[string]string{}
	if t.Kind() != reflect.Struct {
		return labels
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if l := f.Tag.Get("label"); l != "" {
			labels[f.Name] = l
		}
	}
	return labels
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return label + " is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "email":
		return "Enter a valid email address."
	case "date":
		return label + " must be a valid date."
	case "role":
		return fmt.Sprintf("%s must be one of: %s.", label, roleList())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid."
	}
}

func roleList() string {
	roles := domainauth.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
