package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

// inlineSegment names untagged embedded structs in validator namespaces.
// encoding/json promotes their fields, so fieldPath removes the segment.
const inlineSegment = "^inline"

// RegisterValidations installs the custom binding tags used by the request DTOs
// and reports field names by their json tag.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" && fld.Anonymous {
			return inlineSegment
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("statusname", validateStatusName); err != nil {
		return fmt.Errorf("register statusname validation: %w", err)
	}
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return fmt.Errorf("register phone validation: %w", err)
	}
	return nil
}

// validateStatusName accepts 1-100 characters without surrounding whitespace.
// Length counts runes, not bytes.
func validateStatusName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && trimmed == name && utf8.RuneCountInString(name) <= 100
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// BindingFieldErrors converts validator failures into field→message pairs.
// It returns nil when err is not a validation failure (e.g. malformed JSON).
func BindingFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = fieldMessage(fe)
	}
	return out
}

// fieldPath drops the top-level struct name and embedded struct segments from
// the namespace, e.g. "SaveStatusOrderRequest.statuses[0].order" becomes
// "statuses[0].order" and "ProvisionRequest.^inline.phone" becomes "phone".
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) < 2 {
		return fe.Field()
	}
	path := make([]string, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		if seg == "" || seg == inlineSegment {
			continue
		}
		path = append(path, seg)
	}
	return strings.Join(path, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Must be at least " + fe.Param() + " characters or items."
	case "max":
		return "May not be greater than " + fe.Param() + " characters."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	case "statusname":
		return "Must be 1-100 characters without leading or trailing spaces."
	case "phone":
		return "Must be a valid phone number."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "iso4217":
		return "Must be an ISO 4217 currency code."
	default:
		return "Failed the '" + fe.Tag() + "' check."
	}
}
