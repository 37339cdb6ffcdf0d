package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarRequestHeader is set by the DataStar client on every action.
const DataStarRequestHeader = "Datastar-Request"

// Signals creates a binder for DataStar signal payloads: the `datastar`
// query parameter on GET requests, the JSON body otherwise. Fields are
// matched by their `json` tags.
//
// Requests not issued by DataStar are reported as not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDataStar(r) {
			return fmt.Errorf("%w: not a DataStar request", ErrBinderNotApplicable)
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: signals: %v", ErrInvalidJSON, err)
		}
		return nil
	}
}

func isDataStar(r *http.Request) bool {
	return r.Header.Get(DataStarRequestHeader) == "true" || r.URL.Query().Has("datastar")
}
