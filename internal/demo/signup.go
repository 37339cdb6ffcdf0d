package demo

import (
	"fmt"

	"github.com/dmitrymomot/formvalid/form"
	"github.com/dmitrymomot/formvalid/handler"
	"github.com/dmitrymomot/formvalid/pkg/logger"
)

// Signal names of the signup page.
const (
	valuesSignal = "values"
	errorsSignal = "errors"
)

// signupRequest mirrors the fields of signup.yaml. DataStar sends it as the
// signal store, classic forms as urlencoded fields.
type signupRequest struct {
	Username  string `json:"username" form:"username"`
	Email     string `json:"email" form:"email"`
	Card      string `json:"card" form:"card"`
	Account   string `json:"account" form:"account"`
	BirthDate string `json:"birthDate" form:"birthDate"`
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
	Referral  string `json:"referral" form:"referral"`
	Terms     string `json:"terms" form:"terms"`
}

func (r signupRequest) values() map[string]any {
	return map[string]any{
		"username":  r.Username,
		"email":     r.Email,
		"card":      r.Card,
		"account":   r.Account,
		"birthDate": r.BirthDate,
		"startDate": r.StartDate,
		"endDate":   r.EndDate,
		"referral":  r.Referral,
		"terms":     r.Terms,
	}
}

// signupForm validates the submitted fields with the group built from the
// signup schema. Settle waits for sanitizing rules to write back, after which
// the errors describe the cleaned values.
func (a *App) signupForm(ctx handler.Context, req signupRequest) handler.Response {
	g, err := a.signup.Build(form.WithClock(a.clock), form.WithValues(req.values()))
	if err != nil {
		return handler.JSONError(fmt.Errorf("build signup form: %w", err))
	}
	if err := g.Settle(ctx); err != nil {
		return handler.JSONError(err)
	}

	fieldErrs := g.Errors()
	if len(fieldErrs) > 0 {
		a.log.InfoContext(ctx, "signup rejected", logger.Fields(handler.ValidationError(fieldErrs).Fields()...))
	}

	if handler.IsDataStar(ctx.Request()) {
		// Fields that passed are sent as null, which clears their signal.
		errs := make(map[string]any, len(g.Names()))
		for _, name := range g.Names() {
			if e, ok := fieldErrs[name]; ok {
				errs[name] = e
			} else {
				errs[name] = nil
			}
		}
		return handler.Signals(map[string]any{
			valuesSignal: g.Values(),
			errorsSignal: errs,
		})
	}

	if len(fieldErrs) > 0 {
		return handler.JSONError(handler.ValidationError(fieldErrs))
	}
	return handler.JSON(g.Values())
}
