package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONSize caps JSON request bodies (1MB).
const MaxJSONSize = 1 << 20

// JSON creates a strict JSON body binder: unknown fields and trailing data
// are rejected. DataStar requests are left to Signals.
//
//	r.Post("/api/payments", handler.Wrap(h, handler.WithBinders[handler.Context, PaymentRequest](binder.JSON())))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if isDataStar(r) {
			return fmt.Errorf("%w: DataStar request", ErrBinderNotApplicable)
		}
		if err := requireMediaType(r, "application/json"); err != nil {
			return err
		}

		dec := json.NewDecoder(io.LimitReader(r.Body, MaxJSONSize))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}
