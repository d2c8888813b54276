package helper

import (
	"strings"
	"unicode"

	"newshub/models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()
	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic("failed to register validator translations: " + err.Error())
	}
}

// Validate checks a DTO against its validate tags. It returns nil on
// success and a *models.ValidationError with translated, per-field
// messages otherwise. It never panics on malformed input.
func Validate(s interface{}) *models.ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = []string{"invalid input"}
		return &models.ValidationError{Fields: fields}
	}

	translated := verrs.Translate(translator)
	for _, e := range verrs {
		key := Underscore(e.StructField())
		fields[key] = append(fields[key], translated[e.Namespace()])
	}
	return &models.ValidationError{Fields: fields}
}

// Underscore converts a CamelCase struct field name to snake_case so
// that error keys match the JSON field names clients submitted.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
