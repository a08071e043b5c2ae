package domain

// ValidationReason tells why an input was rejected.
type ValidationReason string

const (
	ReasonNone       ValidationReason = ""
	ReasonEmpty      ValidationReason = "empty"
	ReasonSeparators ValidationReason = "separators"
	ReasonNotANumber ValidationReason = "not_a_number"
	ReasonZero       ValidationReason = "zero"
	ReasonNegative   ValidationReason = "negative"
	ReasonFraction   ValidationReason = "fraction"
	ReasonExceedsMax ValidationReason = "exceeds_max"
	ReasonBelowMin   ValidationReason = "below_min"
)

// MessageKey returns the message bundle key of the reason.
func (r ValidationReason) MessageKey() string {
	return "validation." + string(r)
}

// ValidationResult is the outcome of validating user input.
type ValidationResult struct {
	Valid   bool
	Reason  ValidationReason
	Message string
	// Amount holds the parsed amount when Valid is true.
	Amount Coin
}

// Valid returns a positive result for the given amount.
func Valid(amount Coin) ValidationResult {
	return ValidationResult{Valid: true, Amount: amount}
}

// Invalid returns a negative result.
func Invalid(reason ValidationReason, message string) ValidationResult {
	return ValidationResult{Reason: reason, Message: message}
}
