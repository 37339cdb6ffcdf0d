package binder

import (
	"fmt"
	"net/http"
)

// Path creates a binder for router path parameters. extractor looks a
// parameter up by name; with chi that is chi.URLParam:
//
//	type ValidateRequest struct {
//	    Validator string `path:"validator" json:"-"`
//	}
//
//	r.Post("/api/validate/{validator}", handler.Wrap(h,
//	    handler.WithBinders[handler.Context, ValidateRequest](binder.Path(chi.URLParam), binder.JSON()),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		return bindFunc(v, "path", func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrInvalidPath)
	}
}
