package demo

import (
	"github.com/dmitrymomot/formvalid/handler"
	"github.com/dmitrymomot/formvalid/pkg/logger"
	"github.com/dmitrymomot/formvalid/pkg/sanitizer"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

type paymentRequest struct {
	CardNumber string  `json:"cardNumber" validate:"required,card_number"`
	Provider   string  `json:"provider,omitempty" validate:"omitempty,oneof=amex dinersclub discover jcb mastercard unionpay visa"`
	Account    string  `json:"account,omitempty" validate:"omitempty,luhn_number"`
	Reference  string  `json:"reference" validate:"required,contains_text=inv;i"`
	Terms      string  `json:"terms" validate:"required,equals_text=accepted"`
	ChargeAt   string  `json:"chargeAt,omitempty" validate:"omitempty,after_date"`
	Amount     float64 `json:"amount" validate:"gt=0"`
}

type paymentResponse struct {
	CardNumber string  `json:"cardNumber"`
	Provider   string  `json:"provider,omitempty"`
	Reference  string  `json:"reference"`
	Amount     float64 `json:"amount"`
}

func (a *App) pay(ctx handler.Context, req paymentRequest) handler.Response {
	if err := a.validate.StructCtx(ctx, req); err != nil {
		fields := a.tags.Explain(err)
		if fields == nil {
			return handler.JSONError(err)
		}
		verr := handler.ValidationError(fields)
		a.log.InfoContext(ctx, "payment rejected", logger.Fields(verr.Fields()...))
		return handler.JSONError(verr)
	}

	// The provider is only known at request time, so it cannot live in a tag.
	if req.Provider != "" {
		err := validator.Apply(validator.FieldRule("cardNumber", req.CardNumber,
			validator.IsCreditCard(validator.WithProvider(req.Provider))))
		if validator.IsValidationError(err) {
			return handler.JSONError(handler.AsValidationError(validator.ExtractValidationErrors(err)))
		}
	}

	return handler.JSON(paymentResponse{
		CardNumber: sanitizer.MaskCreditCard(req.CardNumber),
		Provider:   req.Provider,
		Reference:  req.Reference,
		Amount:     req.Amount,
	})
}
