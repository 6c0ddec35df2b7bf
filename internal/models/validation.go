package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so errors line up with request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = v.RegisterValidation("leadstatus", func(fl validator.FieldLevel) bool {
		return IsValidLeadStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("leadsource", func(fl validator.FieldLevel) bool {
		return IsValidLeadSource(fl.Field().String())
	})
	_ = v.RegisterValidation("leadpriority", func(fl validator.FieldLevel) bool {
		return IsValidLeadPriority(fl.Field().String())
	})

	return v
}

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned by the entity constructors when input
// violates the schema. It carries one entry per offending field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, rule, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field, rule, message string) *ValidationError {
	e := &ValidationError{}
	e.add(field, rule, message)
	return e
}

// ParseObjectID parses a hex identifier, reporting failures against field.
func ParseObjectID(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, NewValidationError(field, "objectid", "must be a valid id")
	}
	return id, nil
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.add(fe.Field(), fe.Tag(), ruleMessage(fe.Tag(), fe.Param()))
	}
	return out
}

// validateValue checks a single value against tag, appending to into on failure.
func validateValue(into *ValidationError, field string, value any, tag string) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		into.add(field, tag, "is invalid")
		return
	}
	fe := verrs[0]
	into.add(field, fe.Tag(), ruleMessage(fe.Tag(), fe.Param()))
}

func ruleMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", param)
	case "objectid":
		return "must be a valid id"
	case "leadstatus":
		return "must be one of: " + joinValues(LeadStatuses())
	case "leadsource":
		return "must be one of: " + joinValues(LeadSources())
	case "leadpriority":
		return "must be one of: " + joinValues(LeadPriorities())
	default:
		return "failed " + tag + " validation"
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
