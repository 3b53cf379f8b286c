package model

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so error details match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags of a request body. Only structural rules are
// enforced (presence and type); no business rules.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return goerr.Wrap(ErrInvalidRequest, "field "+fe.Field()+" failed on '"+fe.Tag()+"'",
			goerr.V(FieldKey, fe.Field()),
			goerr.V(TagKey, fe.Tag()))
	}

	return goerr.Wrap(ErrInvalidRequest, err.Error())
}
