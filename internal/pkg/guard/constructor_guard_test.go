package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/pkg/guard"
)

var errNotConstructed = errors.New("Reason must be created via NewReason constructor")

// reason mirrors how the domain's commands and value objects embed the guard:
// private fields, a constructor that sets the guard, and a Validate that
// surfaces a type-specific sentinel for zero values.
type reason struct {
	code  string
	guard guard.ConstructorGuard
}

func newReason(code string) (reason, error) {
	if code == "" {
		return reason{}, errors.New("code is required")
	}
	return reason{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (r reason) Validate() error {
	return r.guard.Validate(errNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_the_supplied_sentinel", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_the_default_sentinel", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInAValueObject(t *testing.T) {
	t.Run("value_built_through_its_constructor_validates", func(t *testing.T) {
		built, err := newReason("CHANGED_MIND")

		require.NoError(t, err)
		assert.NoError(t, built.Validate())
	})

	t.Run("zero_value_fails_validation_with_the_type_sentinel", func(t *testing.T) {
		var zero reason

		err := zero.Validate()

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("a_copy_of_a_constructed_value_stays_constructed", func(t *testing.T) {
		built, err := newReason("OTHER")
		require.NoError(t, err)

		copied := built

		assert.NoError(t, copied.Validate())
	})
}
