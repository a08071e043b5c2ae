// Package trade implements the controllers of the trading views.
package trade

import (
	"strconv"
	"sync"

	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/engine/validation"
	"go.trai.ch/desk/internal/gui"
)

// OfferControllerType is the controller type named by the offer view.
const OfferControllerType domain.ControllerType = "trade.offer"

// OfferController drives the create-offer form. It validates the amount on
// every change and enables the submit button only for valid amounts.
type OfferController struct {
	validator *validation.AmountValidator

	mu          sync.Mutex
	amountError *domain.Node
	submit      *domain.Node
	result      domain.ValidationResult
}

// NewOfferController creates an OfferController.
func NewOfferController(validator *validation.AmountValidator) *OfferController {
	return &OfferController{validator: validator}
}

// Initialize binds the error label and the submit button of view.
func (c *OfferController) Initialize(view *domain.View) error {
	amountError, err := gui.BindNode(view, "amount-error")
	if err != nil {
		return err
	}
	submit, err := gui.BindNode(view, "submit")
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.amountError = amountError
	c.submit = submit
	c.render()
	return nil
}

// SetAmount validates input and updates the form.
func (c *OfferController) SetAmount(input string) domain.ValidationResult {
	result := c.validator.Validate(input)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = result
	c.render()
	return result
}

// Amount returns the last valid amount.
func (c *OfferController) Amount() (domain.Coin, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Amount, c.result.Valid
}

// render copies the last result into the bound elements. Callers hold c.mu.
func (c *OfferController) render() {
	if c.amountError != nil {
		c.amountError.Text = c.result.Message
	}
	if c.submit != nil {
		if c.submit.Props == nil {
			c.submit.Props = make(map[string]string)
		}
		c.submit.Props["enabled"] = strconv.FormatBool(c.result.Valid)
	}
}
