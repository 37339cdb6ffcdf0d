package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalid/binder"
)

type signupRequest struct {
	Email    string   `json:"email" form:"email"`
	Card     string   `json:"card" form:"card"`
	Guests   int      `json:"guests" form:"guests"`
	Terms    bool     `json:"terms" form:"terms"`
	Tags     []string `json:"tags" form:"tag"`
	Referral *string  `json:"referral" form:"referral"`
	Internal string   `json:"-" form:"-"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	newRequest := func(contentType, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		return req
	}

	t.Run("binds body", func(t *testing.T) {
		t.Parallel()
		req := newRequest("application/json; charset=utf-8", `{"email":"ann@example.com","guests":2,"terms":true,"tags":["a","b"]}`)

		var got signupRequest
		require.NoError(t, binder.JSON()(req, &got))
		assert.Equal(t, "ann@example.com", got.Email)
		assert.Equal(t, 2, got.Guests)
		assert.True(t, got.Terms)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		assert.Nil(t, got.Referral)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		req := newRequest("application/json", `{"email":"a@b.c","admin":true}`)

		var got signupRequest
		err := binder.JSON()(req, &got)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		req := newRequest("application/json", `{"email":"a@b.c"}{"email":"x"}`)

		var got signupRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrInvalidJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		assert.ErrorIs(t, binder.JSON()(newRequest("application/json", ""), &got), binder.ErrInvalidJSON)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		assert.ErrorIs(t, binder.JSON()(newRequest("", `{}`), &got), binder.ErrMissingContentType)
	})

	t.Run("other media type is not applicable", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		err := binder.JSON()(newRequest("application/x-www-form-urlencoded", "email=x"), &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	newRequest := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	t.Run("binds fields", func(t *testing.T) {
		t.Parallel()
		req := newRequest(url.Values{
			"email":    {"ann@example.com"},
			"guests":   {"3"},
			"terms":    {"on"},
			"tag":      {"x", "y"},
			"referral": {"REF-1"},
			"Internal": {"nope"},
		})

		var got signupRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "ann@example.com", got.Email)
		assert.Equal(t, 3, got.Guests)
		assert.True(t, got.Terms)
		assert.Equal(t, []string{"x", "y"}, got.Tags)
		require.NotNil(t, got.Referral)
		assert.Equal(t, "REF-1", *got.Referral)
		assert.Empty(t, got.Internal)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		err := binder.Form()(newRequest(url.Values{"guests": {"many"}}), &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
		assert.Contains(t, err.Error(), "Guests")
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		assert.ErrorIs(t, binder.Form()(newRequest(url.Values{"terms": {"maybe"}}), &got), binder.ErrInvalidForm)
	})

	t.Run("json request is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got signupRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		assert.ErrorIs(t, binder.Form()(newRequest(url.Values{}), got), binder.ErrInvalidForm)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	type validateRequest struct {
		Validator string `path:"validator"`
		Page      uint   `path:"page"`
		Skipped   string `path:"-"`
	}

	params := map[string]string{"validator": "isCreditCard", "page": "2", "-": "x"}
	extractor := func(_ *http.Request, name string) string { return params[name] }

	t.Run("binds parameters", func(t *testing.T) {
		t.Parallel()
		var got validateRequest
		require.NoError(t, binder.Path(extractor)(httptest.NewRequest(http.MethodPost, "/", nil), &got))
		assert.Equal(t, "isCreditCard", got.Validator)
		assert.Equal(t, uint(2), got.Page)
		assert.Empty(t, got.Skipped)
	})

	t.Run("missing parameters keep zero values", func(t *testing.T) {
		t.Parallel()
		empty := func(*http.Request, string) string { return "" }

		var got validateRequest
		require.NoError(t, binder.Path(empty)(httptest.NewRequest(http.MethodPost, "/", nil), &got))
		assert.Equal(t, validateRequest{}, got)
	})

	t.Run("nil extractor", func(t *testing.T) {
		t.Parallel()
		var got validateRequest
		assert.ErrorIs(t, binder.Path(nil)(httptest.NewRequest(http.MethodPost, "/", nil), &got), binder.ErrInvalidPath)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		bad := func(*http.Request, string) string { return "-1" }

		var got validateRequest
		assert.ErrorIs(t, binder.Path(bad)(httptest.NewRequest(http.MethodPost, "/", nil), &got), binder.ErrInvalidPath)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("binds body signals", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"email":"ann@example.com","guests":2,"ui":{"open":true}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(binder.DataStarRequestHeader, "true")

		var got signupRequest
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "ann@example.com", got.Email)
		assert.Equal(t, 2, got.Guests)
	})

	t.Run("binds query signals", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"card":"4111 1111 1111 1111"}`}}
		req := httptest.NewRequest(http.MethodGet, "/api/signup?"+q.Encode(), nil)

		var got signupRequest
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "4111 1111 1111 1111", got.Card)
	})

	t.Run("plain request is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got signupRequest
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("json binder steps aside", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(binder.DataStarRequestHeader, "true")

		var got signupRequest
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrBinderNotApplicable)
	})
}
