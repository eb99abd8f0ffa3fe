package pkg

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/jobtracker/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator. It reads the same "binding"
// tags gin uses, so a request bound by a handler and an input checked by a
// service obey one rule set.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return parseJSONTagName(f.Tag.Get("json"))
		})
	})
	return validate
}

// Validate checks obj against its binding tags. A rule violation is returned
// as a ValidationFailure whose Fields are keyed by JSON name.
func Validate(obj any) error {
	err := validatorInstance().Struct(obj)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return domain.NewValidationError(fieldErrors(ve, nil))
	}
	return domain.NewAppError(domain.CodeValidation, "validation error", err)
}

// fieldErrors renders ve as field name → "rule" or "rule=param".
func fieldErrors(ve validator.ValidationErrors, jsonTags map[string]string) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		} else if name == fe.StructField() {
			name = strings.ToLower(name[:1]) + name[1:]
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out[name] = msg
	}
	return out
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if name := parseJSONTagName(f.Tag.Get("json")); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
