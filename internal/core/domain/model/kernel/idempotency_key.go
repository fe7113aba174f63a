package kernel

import "github.com/google/uuid"

// IdempotencyKey identifies one buyer intent across retries. Each order
// lifecycle command mints a key at construction and carries it on every
// resend, so the upstream API can deduplicate a retried cancel, return or
// replacement request instead of acting twice.
//
// The zero value is not a key; a key is only obtained through
// NewIdempotencyKey.
type IdempotencyKey struct {
	value string
}

// NewIdempotencyKey mints a fresh random key (a version 4 UUID in its
// canonical string form, which is what the Idempotency-Key header carries).
func NewIdempotencyKey() IdempotencyKey {
	return IdempotencyKey{value: uuid.NewString()}
}

// String returns the wire form of the key, empty for the zero value.
func (k IdempotencyKey) String() string {
	return k.value
}

// IsZero reports whether the key was never minted.
func (k IdempotencyKey) IsZero() bool {
	return k.value == ""
}
