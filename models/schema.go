package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Collection names, one per record type
const (
	CollectionUser    = "user"
	CollectionDriver  = "driver"
	CollectionOrder   = "order"
	CollectionPayment = "payment"
)

// Record is a typed domain record stored in its own collection
type Record interface {
	Collection() string
}

// Enum is implemented by every literal-valued field type. The "enum"
// validation tag and the status-update path both go through IsValid.
type Enum interface {
	IsValid() bool
	String() string
}

// SchemaInfo describes the model/collection pairs for admin tooling
type SchemaInfo struct {
	Models      []string `json:"models"`
	Collections []string `json:"collections"`
}

func Schemas() SchemaInfo {
	return SchemaInfo{
		Models:      []string{"User", "Driver", "Order", "Payment"},
		Collections: []string{CollectionUser, CollectionDriver, CollectionOrder, CollectionPayment},
	}
}

// ValidationError reports the first field that violated a schema rule
type ValidationError struct {
	Field string
	Rule  string
	Value any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		if e.Value == nil {
			return "validation failed: " + e.Rule
		}
		return fmt.Sprintf("validation failed: rule '%s' (got %v)", e.Rule, e.Value)
	}
	return fmt.Sprintf("validation failed on field '%s': rule '%s' (got %v)", e.Field, e.Rule, e.Value)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(Enum)
		return ok && e.IsValid()
	})
	return v
}

// Validate checks a record against its schema tags
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Rule: err.Error()}
	}
	fe := verrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return &ValidationError{Field: fieldPath(fe.Namespace()), Rule: rule, Value: fe.Value()}
}

// ValidateEnum rejects values outside an enum's declared literals
func ValidateEnum(field string, e Enum) error {
	if e.IsValid() {
		return nil
	}
	return &ValidationError{Field: field, Rule: "enum", Value: e.String()}
}

// fieldPath drops the struct name from a validator namespace:
// "Order.items[0].price" -> "items[0].price"
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
