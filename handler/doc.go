// Package handler provides type-safe HTTP request handling for the
// validation API.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response:
//
//	type PaymentRequest struct {
//		CardNumber string `json:"cardNumber" validate:"required,card_number=visa"`
//	}
//
//	func pay(ctx handler.Context, req PaymentRequest) handler.Response {
//		if err := validate.StructCtx(ctx, req); err != nil {
//			return handler.JSONError(handler.ValidationError(tagrules.Explain(err)))
//		}
//		return handler.JSON(req)
//	}
//
//	r.Post("/api/payments", handler.Wrap(pay,
//		handler.WithBinders[handler.Context, PaymentRequest](binder.JSON()),
//	))
//
// # Response Types
//
//	handler.JSON(data)                         // 200 OK with {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.JSONError(err)                     // status derived from err
//	handler.Signals(map[string]any{...})       // DataStar signal patch over SSE
//
// # Error Handling
//
// ValidationError maps field names to validator.Errors and renders as 422
// with both the raw mapping and English messages per field:
//
//	{"error": {"code": "validation_error", "message": "...",
//	  "fields": {"card": {"errors": {"isCreditCard": {...}}, "messages": ["invalid credit card number"]}}}}
//
// HTTPError values carry their own status; binder failures render as 400 and
// any other error as 500 without leaking its text.
//
// NewErrorHandler adapts to the request: DataStar clients get "error" and
// "errors" signals, others the JSON body above.
package handler
