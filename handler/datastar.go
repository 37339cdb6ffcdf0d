package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formvalid/binder"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request is a DataStar request: the client header,
// an SSE Accept header or signals in the query string.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(binder.DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// signalsResponse implements Response for DataStar signal patches.
type signalsResponse struct {
	signals       any
	onlyIfMissing bool
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return fmt.Errorf("failed to marshal signals: %w", err)
	}

	sse := NewSSE(w, r)
	if s.onlyIfMissing {
		return sse.PatchSignals(data, datastar.WithOnlyIfMissing(true))
	}
	return sse.PatchSignals(data)
}

// Signals creates a response that merges signals into the DataStar store of
// the client. signals is marshaled as JSON; a nil map value removes the
// signal on the client.
//
//	return handler.Signals(map[string]any{
//		"errors": fieldErrors,
//		"values": sanitized,
//	})
func Signals(signals any) Response {
	return signalsResponse{signals: signals}
}

// SignalDefaults is like Signals but only sets signals the client does not
// have yet.
func SignalDefaults(signals any) Response {
	return signalsResponse{signals: signals, onlyIfMissing: true}
}
