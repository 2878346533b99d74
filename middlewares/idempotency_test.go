package middlewares

import (
	"testing"

	"pembukuan-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdempotency(t *testing.T) {
	const hash = "a3f1"

	t.Run("pending record lets the handler run", func(t *testing.T) {
		rec := models.IdempotencyKey{RequestHash: hash}
		assert.Equal(t, idemProceed, resolveIdempotency(rec, hash))
	})

	t.Run("completed record replays, the handler must not run again", func(t *testing.T) {
		rec := models.IdempotencyKey{
			RequestHash:    hash,
			ResponseStatus: 201,
			ResponseBody:   []byte(`{"id":1}`),
		}
		assert.Equal(t, idemReplay, resolveIdempotency(rec, hash))
	})

	t.Run("same key for a different request conflicts", func(t *testing.T) {
		rec := models.IdempotencyKey{
			RequestHash:    "b7e2",
			ResponseStatus: 201,
			ResponseBody:   []byte(`{}`),
		}
		assert.Equal(t, idemConflict, resolveIdempotency(rec, hash))
	})

	t.Run("status without a stored body is still in progress", func(t *testing.T) {
		rec := models.IdempotencyKey{RequestHash: hash, ResponseStatus: 201}
		assert.Equal(t, idemProceed, resolveIdempotency(rec, hash))
	})
}
