package validator_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalid/pkg/validator"
)

func intPtr(n int) *int { return &n }

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"contains", "equals", "isAfter", "isBefore", "isCreditCard", "isLuhnNumber",
	}, validator.Keys())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	clock := validator.FixedClock(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	t.Run("contains", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyContains, validator.Params{
			Element:        "ab",
			IgnoreCase:     true,
			MinOccurrences: intPtr(2),
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, check("AB-ab"))
		assert.NotNil(t, check("AB"))
	})

	t.Run("contains defaults to one occurrence", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyContains, validator.Params{Element: "ab"}, nil)
		require.NoError(t, err)
		assert.Nil(t, check("cab"))
	})

	t.Run("explicit zero occurrences always passes", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyContains, validator.Params{Element: "ab", MinOccurrences: intPtr(0)}, nil)
		require.NoError(t, err)
		assert.Nil(t, check("xyz"))
	})

	t.Run("equals", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyEquals, validator.Params{Comparison: "yes"}, nil)
		require.NoError(t, err)
		assert.Nil(t, check("yes"))
		assert.NotNil(t, check("Yes"))
	})

	t.Run("date validators use the given clock", func(t *testing.T) {
		t.Parallel()
		after, err := validator.Build(validator.KeyIsAfter, validator.Params{}, clock)
		require.NoError(t, err)
		assert.Nil(t, after("2024-06-16"))
		assert.NotNil(t, after("2024-06-14"))

		before, err := validator.Build(validator.KeyIsBefore, validator.Params{ComparisonDate: "2024-01-01"}, clock)
		require.NoError(t, err)
		assert.Nil(t, before("2023-12-31"))
		assert.NotNil(t, before("2024-06-14"))
	})

	t.Run("credit card", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyIsCreditCard, validator.Params{Provider: "amex"}, nil)
		require.NoError(t, err)
		assert.Nil(t, check("378282246310005"))
		assert.NotNil(t, check("4111111111111111"))
	})

	t.Run("luhn", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyIsLuhnNumber, validator.Params{}, nil)
		require.NoError(t, err)
		assert.Nil(t, check("79927398713"))
	})

	t.Run("unknown provider is an error", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build(validator.KeyIsCreditCard, validator.Params{Provider: "bogus"}, nil)
		assert.ErrorIs(t, err, validator.ErrUnknownProvider)
		assert.Nil(t, check)
	})

	t.Run("unknown validator is an error", func(t *testing.T) {
		t.Parallel()
		check, err := validator.Build("isEmail", validator.Params{}, nil)
		assert.ErrorIs(t, err, validator.ErrUnknownValidator)
		assert.Contains(t, err.Error(), "isEmail")
		assert.Nil(t, check)
	})
}

func TestParams_JSON(t *testing.T) {
	t.Parallel()

	var p validator.Params
	err := json.Unmarshal([]byte(`{"element":"x","ignoreCase":true,"minOccurrences":0,"provider":"visa"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "x", p.Element)
	assert.True(t, p.IgnoreCase)
	require.NotNil(t, p.MinOccurrences)
	assert.Equal(t, 0, *p.MinOccurrences)
	assert.Equal(t, "visa", p.Provider)
}
