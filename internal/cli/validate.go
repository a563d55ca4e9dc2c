package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/UnknownOlympus/storefinder/internal/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ErrInvalidQuery is returned when the command-line arguments do not form a valid query.
var ErrInvalidQuery = errors.New("invalid arguments")

// queryValidator checks a Query and reports problems by flag name.
type queryValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newQueryValidator() *queryValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return "--" + strings.ToLower(field.Name)
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &queryValidator{validate: validate, trans: trans}
}

func (qv *queryValidator) Check(query models.Query) error {
	err := qv.validate.Struct(query)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, e.Translate(qv.trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalidQuery, strings.Join(messages, "; "))
}
