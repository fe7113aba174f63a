package kernel_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/core/domain/model/kernel"
)

func TestNewIdempotencyKey(t *testing.T) {
	t.Run("mints_a_canonical_uuid", func(t *testing.T) {
		key := kernel.NewIdempotencyKey()

		require.False(t, key.IsZero())
		parsed, err := uuid.Parse(key.String())
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
	})

	t.Run("every_mint_is_distinct", func(t *testing.T) {
		first := kernel.NewIdempotencyKey()
		second := kernel.NewIdempotencyKey()

		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("key_is_stable_once_minted", func(t *testing.T) {
		key := kernel.NewIdempotencyKey()

		assert.Equal(t, key.String(), key.String())
	})
}

func TestIdempotencyKey_IsZero(t *testing.T) {
	t.Run("zero_value_is_not_a_key", func(t *testing.T) {
		var key kernel.IdempotencyKey

		assert.True(t, key.IsZero())
		assert.Empty(t, key.String())
	})
}
