package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simkit/pkg/validator"
)

func failing(field string, kind validator.Kind) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: "bad " + field, Kind: kind, Index: -1},
	}
}

func passing() validator.Rule {
	return validator.Rule{Check: func() bool { return true }}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("error string includes field", func(t *testing.T) {
		err := validator.ValidationError{Field: "size", Message: "must be planar"}
		assert.Equal(t, "size: must be planar", err.Error())
	})

	t.Run("error string without field", func(t *testing.T) {
		err := validator.ValidationError{Message: "must be planar"}
		assert.Equal(t, "must be planar", err.Error())
	})

	t.Run("matches kind sentinels", func(t *testing.T) {
		v := validator.ValidationError{Kind: validator.KindValidation}
		s := validator.ValidationError{Kind: validator.KindSetup}

		assert.ErrorIs(t, v, validator.ErrValidation)
		assert.NotErrorIs(t, v, validator.ErrSetup)
		assert.ErrorIs(t, s, validator.ErrSetup)
		assert.NotErrorIs(t, s, validator.ErrValidation)
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("building: %w", validator.ValidationError{Kind: validator.KindSetup})
		assert.ErrorIs(t, err, validator.ErrSetup)
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all pass", func(t *testing.T) {
		assert.NoError(t, validator.First(passing(), passing()))
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		evaluated := false
		later := validator.Rule{Check: func() bool { evaluated = true; return false }}

		err := validator.First(passing(), failing("a", validator.KindSetup), later)
		require.Error(t, err)
		assert.False(t, evaluated)

		verr, ok := validator.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "a", verr.Field)
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		_, ok := validator.ExtractValidationError(nil)
		assert.False(t, ok)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := validator.ExtractValidationError(errors.New("boom"))
		assert.False(t, ok)
	})

	t.Run("from a wrapped failure", func(t *testing.T) {
		err := fmt.Errorf("wrap: %w", validator.First(failing("x", validator.KindValidation)))
		verr, ok := validator.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "x", verr.Field)
		assert.Equal(t, validator.KindValidation, verr.Kind)
	})
}
