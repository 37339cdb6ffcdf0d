package demo_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalid/internal/demo"
	"github.com/dmitrymomot/formvalid/pkg/config"
	"github.com/dmitrymomot/formvalid/pkg/requestid"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	app, err := demo.New(
		demo.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		demo.WithClock(validator.FixedClock(now)),
	)
	require.NoError(t, err)
	return app.Router()
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code   string `json:"code"`
		Fields map[string]struct {
			Errors   map[string]map[string]any `json:"errors"`
			Messages []string                  `json:"messages"`
		} `json:"fields"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var got envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return got
}

func TestHealth(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	w := do(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestid.Header))

	w = do(t, h, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "READY", w.Body.String())
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	w := do(t, newRouter(t), http.MethodGet, "/api/validators", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w).Data
	assert.Len(t, data["validators"], 6)
	assert.Contains(t, data["providers"], "visa")
	assert.Contains(t, data["transforms"], "trim")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	tests := []struct {
		name      string
		validator string
		body      string
		code      int
		valid     bool
		errorKey  string
	}{
		{
			name:      "valid card",
			validator: "isCreditCard",
			body:      `{"value":"4111 1111 1111 1111"}`,
			code:      http.StatusOK,
			valid:     true,
		},
		{
			name:      "provider mismatch",
			validator: "isCreditCard",
			body:      `{"value":"4111111111111111","options":{"provider":"amex"}}`,
			code:      http.StatusOK,
		},
		{
			name:      "overlapping contains",
			validator: "contains",
			body:      `{"value":"aaa","options":{"element":"aa","minOccurrences":2}}`,
			code:      http.StatusOK,
			valid:     true,
		},
		{
			name:      "date before fixed now",
			validator: "isAfter",
			body:      `{"value":"2024-06-01"}`,
			code:      http.StatusOK,
		},
		{
			name:      "transforms run first",
			validator: "equals",
			body:      `{"value":"  A1 ","options":{"comparison":"a1"},"transforms":["trim","lower"]}`,
			code:      http.StatusOK,
			valid:     true,
		},
		{
			name:      "unknown validator",
			validator: "isEmail",
			body:      `{"value":"a@b.c"}`,
			code:      http.StatusNotFound,
			errorKey:  "unknown_validator",
		},
		{
			name:      "unknown provider",
			validator: "isCreditCard",
			body:      `{"value":"4111111111111111","options":{"provider":"maestro"}}`,
			code:      http.StatusBadRequest,
			errorKey:  "unknown_provider",
		},
		{
			name:      "unknown transform",
			validator: "equals",
			body:      `{"value":"x","transforms":["rot13"]}`,
			code:      http.StatusBadRequest,
			errorKey:  "unknown_transform",
		},
		{
			name:      "unknown body field",
			validator: "equals",
			body:      `{"value":"x","extra":1}`,
			code:      http.StatusBadRequest,
			errorKey:  "bad_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := do(t, h, http.MethodPost, "/api/validate/"+tt.validator, "application/json", tt.body)
			require.Equal(t, tt.code, w.Code, w.Body.String())

			got := decode(t, w)
			if tt.errorKey != "" {
				require.NotNil(t, got.Error)
				assert.Equal(t, tt.errorKey, got.Error.Code)
				return
			}
			assert.Equal(t, tt.valid, got.Data["valid"])
			if !tt.valid {
				assert.Contains(t, got.Data["errors"], tt.validator)
			}
		})
	}
}

func TestPayments(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		body := `{"cardNumber":"4111-1111-1111-1111","provider":"visa","account":"79927398713",
			"reference":"INV-2024-001","terms":"accepted","chargeAt":"2024-07-01","amount":12.5}`
		w := do(t, h, http.MethodPost, "/api/payments", "application/json", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decode(t, w).Data
		assert.Equal(t, "************1111", data["cardNumber"])
		assert.Equal(t, "INV-2024-001", data["reference"])
	})

	t.Run("tag failures", func(t *testing.T) {
		t.Parallel()
		body := `{"cardNumber":"4111111111111112","account":"1234","reference":"order 7",
			"terms":"no","chargeAt":"2024-01-01","amount":0}`
		w := do(t, h, http.MethodPost, "/api/payments", "application/json", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		got := decode(t, w).Error
		require.NotNil(t, got)
		assert.Equal(t, "validation_error", got.Code)
		for _, field := range []string{"cardNumber", "account", "reference", "terms", "chargeAt", "amount"} {
			assert.Contains(t, got.Fields, field)
		}
		assert.Equal(t, false, got.Fields["cardNumber"].Errors["isCreditCard"]["luhnValid"])
		assert.Equal(t, []string{`must equal "accepted"`}, got.Fields["terms"].Messages)
		assert.Contains(t, got.Fields["amount"].Errors, "gt")
	})

	t.Run("provider mismatch", func(t *testing.T) {
		t.Parallel()
		body := `{"cardNumber":"378282246310005","provider":"visa","reference":"inv 1","terms":"accepted","amount":1}`
		w := do(t, h, http.MethodPost, "/api/payments", "application/json", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		got := decode(t, w).Error
		assert.Equal(t, []string{"invalid visa card number"}, got.Fields["cardNumber"].Messages)
	})

	t.Run("form posts are not accepted", func(t *testing.T) {
		t.Parallel()
		w := do(t, h, http.MethodPost, "/api/payments", "application/x-www-form-urlencoded", "cardNumber=1")
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func signupBody() map[string]string {
	return map[string]string{
		"username":  " Ann   <b>Lee</b> ",
		"email":     "  Ann@Example.COM ",
		"card":      "4111 1111 1111 1111",
		"account":   "79927398713",
		"birthDate": "1990-01-01",
		"startDate": "2024-07-01",
		"endDate":   "2024-07-10",
		"referral":  "REF-42",
		"terms":     "accepted",
	}
}

func TestSignup(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("json returns cleaned values", func(t *testing.T) {
		t.Parallel()
		body, err := json.Marshal(signupBody())
		require.NoError(t, err)

		w := do(t, h, http.MethodPost, "/api/signup", "application/json", string(body))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decode(t, w).Data
		assert.Equal(t, "Ann Lee", data["username"])
		assert.Equal(t, "ann@example.com", data["email"])
	})

	t.Run("form post with failures", func(t *testing.T) {
		t.Parallel()
		values := url.Values{}
		for k, v := range signupBody() {
			values.Set(k, v)
		}
		values.Set("card", "4111 1111 1111 1112")
		values.Set("endDate", "2024-06-20")
		values.Set("referral", "<friend>")

		w := do(t, h, http.MethodPost, "/api/signup", "application/x-www-form-urlencoded", values.Encode())
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		got := decode(t, w).Error
		require.NotNil(t, got)
		assert.Len(t, got.Fields, 3)
		assert.Contains(t, got.Fields["card"].Errors, "isCreditCard")
		assert.Contains(t, got.Fields["endDate"].Errors, "isAfter")
		assert.Equal(t, "friend", got.Fields["referral"].Errors["contains"]["actualValue"])
	})

	t.Run("datastar patches signals", func(t *testing.T) {
		t.Parallel()
		in := signupBody()
		in["terms"] = "later"
		body, err := json.Marshal(in)
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(string(body)))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Datastar-Request", "true")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		out := w.Body.String()
		assert.Contains(t, out, "datastar-patch-signals")
		assert.Contains(t, out, `"terms":{"equals"`)
		assert.Contains(t, out, `"card":null`)
		assert.Contains(t, out, `"email":"ann@example.com"`)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := demo.LoadConfig(config.WithEnvironment(map[string]string{
		"FORMVALID_ENV":       "production",
		"FORMVALID_HTTP_ADDR": ":9000",
	}))
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "formvalid-demo", cfg.Service)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
}
