package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two users may send the same Idempotency-Key value, so uniqueness must span
// (key, user_id) rather than the key column alone.
func TestIdempotencyKeyUniquePerUser(t *testing.T) {
	typ := reflect.TypeOf(IdempotencyKey{})

	keyField, ok := typ.FieldByName("Key")
	require.True(t, ok)
	userField, ok := typ.FieldByName("UserID")
	require.True(t, ok)

	assert.Contains(t, keyField.Tag.Get("gorm"), "index:idx_idempotency_keys_key_user,unique")
	assert.Contains(t, userField.Tag.Get("gorm"), "index:idx_idempotency_keys_key_user,unique")
	assert.NotContains(t, keyField.Tag.Get("gorm"), "uniqueIndex")
}
