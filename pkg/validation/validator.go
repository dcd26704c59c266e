package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once   sync.Once
	engine *validator.Validate
)

// Engine returns the shared validator. Field errors carry JSON tag names.
func Engine() *validator.Validate {
	once.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return engine
}

// Messages overrides the generated message for a field. Keys are either
// "field" or "field.tag", the latter winning.
type Messages map[string]string

// Struct validates v and collects one message per failing field, in
// declaration order. The result is never nil; use Err to get an error.
func Struct(v any, messages Messages) *Errors {
	errs := &Errors{}
	err := Engine().Struct(v)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("payload", "invalid payload")
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			errs.Add(field, msg)
			continue
		}
		if msg, ok := messages[field]; ok {
			errs.Add(field, msg)
			continue
		}
		errs.Add(field, field+" "+formatFieldError(fe))
	}
	return errs
}

// ToDetails converts request decoding errors into a field→message map.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) || errors.Is(err, errInvalidJSON) {
		return map[string]string{"payload": "invalid json"}
	}
	var verrs *Errors
	if errors.As(err, &verrs) {
		return verrs.Fields()
	}
	return map[string]string{"payload": "invalid payload"}
}

var errInvalidJSON = errors.New("invalid json")

// InvalidJSON marks err as a malformed request body.
func InvalidJSON(err error) error {
	return errors.Join(errInvalidJSON, err)
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "eqfield":
		return "must be equal to " + param
	case "hexcolor":
		return "must be a valid hexadecimal color"
	default:
		if param != "" {
			return "failed " + fe.Tag() + "=" + param
		}
		return "failed " + fe.Tag()
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
