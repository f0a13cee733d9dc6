package controller

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"go-currency-converter/domain"
	"math"
	"strconv"
	"strings"
)

// FormState raw values of the converter form, as typed
type FormState struct {
	From   string `validate:"required"`
	To     string `validate:"required"`
	Amount string `validate:"required"`
}

// Complete reports whether every field has a value
func (s FormState) Complete() bool {
	return s.From != "" && s.To != "" && s.Amount != ""
}

// Request a validated conversion request
type Request struct {
	From   domain.Currency
	To     domain.Currency
	Amount domain.Amount
}

var validate = validator.New()

// ParseRequest validates raw form state.
// A zero amount counts as missing, the same as an empty one.
func ParseRequest(state FormState) (Request, error) {
	if err := validate.Struct(state); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return Request{}, &ValidationError{Field: fieldErrs[0].Field(), Err: ErrMissingField}
		}
		return Request{}, &ValidationError{Err: err}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(state.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount == 0 {
		return Request{}, &ValidationError{Field: "Amount", Err: ErrMissingField}
	}
	if amount < 0 {
		return Request{}, &ValidationError{Field: "Amount", Err: ErrNegativeAmount}
	}

	return Request{
		From:   domain.Currency(state.From),
		To:     domain.Currency(state.To),
		Amount: domain.Amount(amount),
	}, nil
}
