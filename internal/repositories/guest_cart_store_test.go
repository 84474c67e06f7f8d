package repository_test

import (
	"errors"
	"testing"
	"time"

	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guestCartTTL = 720 * time.Hour

func setupGuestCartStore(t *testing.T) (*repository.GuestCartStore, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return repository.NewGuestCartStore(client, guestCartTTL), mock
}

func TestGuestCartStoreRead(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Entry Found", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectGet("guestcart:session-1").SetVal(`[{"id":"42","quantity":1}]`)

		// Act
		payload, err := store.Read(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"42","quantity":1}]`, payload)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Missing Entry Is Empty, Not An Error", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectGet("guestcart:session-1").RedisNil()

		// Act
		payload, err := store.Read(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.Empty(t, payload)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectGet("guestcart:session-1").SetErr(errors.New("connection refused"))

		// Act
		payload, err := store.Read(ctx, "session-1")

		// Assert
		assert.Error(t, err)
		assert.Empty(t, payload)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuestCartStoreWrite(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Writes With TTL", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectSet("guestcart:session-1", `[{"id":"42","quantity":1}]`, guestCartTTL).SetVal("OK")

		// Act
		err := store.Write(ctx, "session-1", `[{"id":"42","quantity":1}]`)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectSet("guestcart:session-1", "[]", guestCartTTL).SetErr(errors.New("readonly replica"))

		// Act
		err := store.Write(ctx, "session-1", "[]")

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuestCartStoreDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectDel("guestcart:session-1").SetVal(1)

		// Act
		err := store.Delete(ctx, "session-1")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupGuestCartStore(t)
		mock.ExpectDel("guestcart:session-1").SetErr(errors.New("connection refused"))

		// Act
		err := store.Delete(ctx, "session-1")

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
