// Package validation implements validation of user-entered amounts.
package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
)

// decimalPattern accepts an optionally signed number with at most one '.'
// and at least one digit: "1", "1.1", ".1", "1.".
var decimalPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// AmountValidator checks that text input is a positive amount within the
// bounds of a network. It holds no mutable state and is safe for concurrent use.
type AmountValidator struct {
	params    domain.NetworkParams
	localizer ports.Localizer
}

// NewAmountValidator creates an AmountValidator for the given network.
// The localizer is optional; without it results carry no message.
func NewAmountValidator(params domain.NetworkParams, localizer ports.Localizer) *AmountValidator {
	return &AmountValidator{
		params:    params,
		localizer: localizer,
	}
}

// Params returns the network bounds used by the validator.
func (v *AmountValidator) Params() domain.NetworkParams {
	return v.params
}

// ValidateOptional validates input that may be absent. A nil input is invalid.
func (v *AmountValidator) ValidateOptional(input *string) domain.ValidationResult {
	if input == nil {
		return v.invalid(domain.ReasonEmpty)
	}
	return v.Validate(*input)
}

// Validate checks that input is a positive amount in main units using either
// ',' or '.' as the decimal separator. Grouping separators are not supported.
func (v *AmountValidator) Validate(input string) domain.ValidationResult {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return v.invalid(domain.ReasonEmpty)
	}

	if strings.Count(cleaned, ",")+strings.Count(cleaned, ".") > 1 {
		return v.invalid(domain.ReasonSeparators)
	}

	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if !decimalPattern.MatchString(cleaned) {
		return v.invalid(domain.ReasonNotANumber)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return v.invalid(domain.ReasonNotANumber)
	}

	switch value.Sign() {
	case 0:
		return v.invalid(domain.ReasonZero)
	case -1:
		return v.invalid(domain.ReasonNegative)
	}

	amount, exact := domain.CoinFromDecimal(value)
	if !exact {
		return v.invalid(domain.ReasonFraction)
	}

	if value.GreaterThan(v.params.MaxMoney.Decimal()) {
		return v.invalid(domain.ReasonExceedsMax, v.params.MaxMoney.PlainString())
	}

	if amount < v.params.SmallestUnit {
		return v.invalid(domain.ReasonBelowMin, v.params.SmallestUnit.PlainString())
	}

	return domain.Valid(amount)
}

func (v *AmountValidator) invalid(reason domain.ValidationReason, args ...any) domain.ValidationResult {
	var msg string
	if v.localizer != nil {
		msg = v.localizer.Localize(reason.MessageKey(), args...)
	}
	return domain.Invalid(reason, msg)
}
