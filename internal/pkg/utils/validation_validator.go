package utils

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("amount_string", validateAmountString)
	validate.RegisterValidation("expiry_month", validateExpiryMonth)
	validate.RegisterValidation("expiry_year", validateExpiryYear)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateAmountString accepts the gateway's string-typed amounts, e.g.
// "1000" or "1000.50". Amounts stay strings end-to-end; parsing them into
// floats would corrupt the encrypted byte layout.
func validateAmountString(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	re := regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	return re.MatchString(amount) && amount != "0"
}

func validateExpiryMonth(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	if len(month) != 2 {
		return false
	}
	value, err := strconv.Atoi(month)
	if err != nil {
		return false
	}
	return value >= 1 && value <= 12
}

func validateExpiryYear(fl validator.FieldLevel) bool {
	year := fl.Field().String()
	if len(year) != 2 {
		return false
	}
	_, err := strconv.Atoi(year)
	return err == nil
}
