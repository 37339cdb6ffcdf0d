package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalid/pkg/validator"
)

func TestEquals(t *testing.T) {
	t.Parallel()

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()
		errs := validator.Equals("Test")("test")
		require.NotNil(t, errs)
		assert.Equal(t, validator.Details{
			"requiredValue": "Test",
			"actualValue":   "test",
		}, errs[validator.KeyEquals])
	})

	t.Run("accepts the exact string", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.Equals("Test")("Test"))
	})

	t.Run("does not trim", func(t *testing.T) {
		t.Parallel()
		assert.NotNil(t, validator.Equals("Test")(" Test"))
	})

	t.Run("coerces values", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.Equals("42")(42))
		assert.Nil(t, validator.Equals("1.5")(1.5))
		assert.Nil(t, validator.Equals("true")(true))
		assert.Nil(t, validator.Equals("0")(0))
	})

	t.Run("empty values are valid", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.Equals("Test")(""))
		assert.Nil(t, validator.Equals("Test")(nil))
	})
}
