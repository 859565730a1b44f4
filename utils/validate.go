package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"reflect"
	"strings"
)

type ErrorDetailElement struct {
	validator.FieldError `json:"-"`
	Field                string `json:"field"`
	Tag                  string `json:"tag"`
	Value                string `json:"value"`
	Message              string `json:"message"`
}

type ErrorDetail []*ErrorDetailElement

func (e ErrorDetail) Error() string {
	var builder strings.Builder
	builder.WriteString("Validation Error: ")
	for _, err := range e {
		builder.WriteString("invalid " + err.Field)
		builder.WriteString("\n")
	}
	return builder.String()
}

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})
}

// Validate checks model against its `validate` tags. Failures are collected
// into an *ErrorDetail; a field's `message` tag overrides the generated text.
func Validate(model any) error {
	errors := validate.Struct(model)
	if errors != nil {
		var errorDetail ErrorDetail
		for _, err := range errors.(validator.ValidationErrors) {
			detail := ErrorDetailElement{
				FieldError: err,
				Field:      err.Field(),
				Tag:        err.Tag(),
				Value:      err.Param(),
				Message:    fieldMessage(model, err),
			}
			errorDetail = append(errorDetail, &detail)
		}
		return &errorDetail
	}
	return nil
}

func fieldMessage(model any, err validator.FieldError) string {
	modelType := reflect.TypeOf(model)
	for modelType.Kind() == reflect.Pointer {
		modelType = modelType.Elem()
	}
	if modelType.Kind() == reflect.Struct {
		if field, ok := modelType.FieldByName(err.StructField()); ok {
			if message := field.Tag.Get("message"); message != "" {
				return message
			}
		}
	}

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL format"
	default:
		return "invalid " + err.Field()
	}
}

// ValidateBody supports json only.
// A string field holding another json kind, null included, is reported as a
// type error; the schema errors of the other fields are reported with it.
func ValidateBody(c *fiber.Ctx, model any) error {
	body := c.Body()
	if len(body) == 0 {
		body = []byte("{}")
	}
	var fields map[string]json.RawMessage
	err := json.Unmarshal(body, &fields)
	if err != nil {
		return BadRequest("Invalid JSON body")
	}

	typeErrors := checkStringFields(model, fields)
	if len(fields) > 0 {
		remaining, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		err = json.Unmarshal(remaining, model)
		if err != nil {
			var typeError *json.UnmarshalTypeError
			if !errors.As(err, &typeError) {
				return BadRequest("Invalid JSON body")
			}
			typeErrors = append(typeErrors, &ErrorDetailElement{
				Field:   typeError.Field,
				Tag:     "type",
				Value:   typeError.Value,
				Message: fmt.Sprintf("Expected %s, received %s", typeError.Type.Kind(), typeError.Value),
			})
		}
	}

	err = defaults.Set(model)
	if err != nil {
		return err
	}

	errorDetail := typeErrors
	err = Validate(model)
	if err != nil {
		validationErrors, ok := err.(*ErrorDetail)
		if !ok {
			return err
		}
		reported := make(map[string]bool, len(typeErrors))
		for _, element := range typeErrors {
			reported[element.Field] = true
		}
		for _, element := range *validationErrors {
			if !reported[element.Field] {
				errorDetail = append(errorDetail, element)
			}
		}
	}
	if len(errorDetail) > 0 {
		return &errorDetail
	}
	return nil
}

// checkStringFields removes from fields every value bound for a string
// field of model that is not a json string, and returns one type error each
func checkStringFields(model any, fields map[string]json.RawMessage) ErrorDetail {
	modelType := reflect.TypeOf(model)
	for modelType.Kind() == reflect.Pointer {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return nil
	}

	var errorDetail ErrorDetail
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		if field.Anonymous || !field.IsExported() || field.Type.Kind() != reflect.String {
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if kind := jsonKind(raw); kind != "string" {
			errorDetail = append(errorDetail, &ErrorDetailElement{
				Field:   name,
				Tag:     "type",
				Value:   kind,
				Message: "Expected string, received " + kind,
			})
			delete(fields, name)
		}
	}
	return errorDetail
}

func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '[':
		return "array"
	case '{':
		return "object"
	default:
		return "number"
	}
}
