package validator

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/shopspring/decimal"
	validation "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

var accountNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validator ... struct validator with english error translations
type Validator struct {
	Validate   *validation.Validate
	Translator ut.Translator
}

// New ... Creates a validator with the custom ledger tags and their messages registered
func New() (*Validator, error) {
	validate := validation.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("notblank", notBlank)
	_ = validate.RegisterValidation("positive_amount", positiveAmount)
	_ = validate.RegisterValidation("account_number", accountNumber)

	trans, err := CustomizeMessages(validate)
	if err != nil {
		return nil, err
	}
	return &Validator{Validate: validate, Translator: trans}, nil
}

// CustomizeMessages ... Customize validation error messages
func CustomizeMessages(validator *validation.Validate) (ut.Translator, error) {
	translator := en.New()
	uni := ut.New(translator, translator)

	trans, found := uni.GetTranslator("en")
	if !found {
		return trans, appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: errors.New("translator not found")}
	}

	if err := en_translations.RegisterDefaultTranslations(validator, trans); err != nil {
		return trans, appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: err}
	}

	messages := map[string]string{
		"required":        "{0} is a required field",
		"notblank":        "{0} cannot be blank",
		"positive_amount": "{0} must be a number greater than zero",
		"account_number":  "{0} must be exactly 10 digits",
	}
	for tag, message := range messages {
		tag, message := tag, message
		_ = validator.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, func(ut ut.Translator, fe validation.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		})
	}

	return trans, nil
}

// Struct ... Validates every field of data and returns one entry per violated constraint
func (v *Validator) Struct(data interface{}) []map[string]string {
	var validationErrors []map[string]string

	err := v.Validate.Struct(data)
	if err == nil {
		return validationErrors
	}
	fieldErrors, ok := err.(validation.ValidationErrors)
	if !ok {
		return append(validationErrors, map[string]string{"request": err.Error()})
	}
	for _, fieldError := range fieldErrors {
		validationErrors = append(validationErrors, map[string]string{
			fieldError.Field(): fieldError.Translate(v.Translator),
		})
	}
	return validationErrors
}

func notBlank(fl validation.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func positiveAmount(fl validation.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return amount.IsPositive()
}

func accountNumber(fl validation.FieldLevel) bool {
	return accountNumberPattern.MatchString(fl.Field().String())
}
