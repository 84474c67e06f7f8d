package repository_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepoTest(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCartRepo(db), mock
}

func TestFetchCart(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()
	userID := uuid.New()

	t.Run("Success - Cart Found", func(t *testing.T) {
		// Arrange
		stored := []models.CartItem{{ID: "42", Name: "Sunrise", Quantity: 2}}
		itemsJSON, err := json.Marshal(stored)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT items\s+FROM carts\s+WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(itemsJSON))

		// Act
		items, err := repo.FetchCart(ctx, userID)

		// Assert
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, models.ProductID("42"), items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Cart Is An Empty Cart", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT items\s+FROM carts\s+WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}))

		// Act
		items, err := repo.FetchCart(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Stored JSON", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT items\s+FROM carts\s+WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow([]byte("{not json")))

		// Act
		items, err := repo.FetchCart(ctx, userID)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReplaceCart(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()
	userID := uuid.New()

	t.Run("Success - Upserts The Full Snapshot", func(t *testing.T) {
		// Arrange
		items := []models.CartItem{{ID: "42", Quantity: 3}}
		itemsJSON, err := json.Marshal(items)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO carts`).
			WithArgs(userID, itemsJSON).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err = repo.ReplaceCart(ctx, userID, items)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Nil Items Store An Empty List", func(t *testing.T) {
		// Arrange
		emptyJSON, err := json.Marshal([]models.CartItem{})
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO carts`).
			WithArgs(userID, emptyJSON).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err = repo.ReplaceCart(ctx, userID, nil)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(`INSERT INTO carts`).
			WillReturnError(errors.New("connection refused"))

		// Act
		err := repo.ReplaceCart(ctx, userID, []models.CartItem{{ID: "42", Quantity: 1}})

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMergeCart(t *testing.T) {
	repo, mock := setupCartRepoTest(t)
	ctx := t.Context()
	userID := uuid.New()

	t.Run("Success - Adds Quantities And Appends New Lines", func(t *testing.T) {
		// Arrange
		stored := []models.CartItem{{ID: "42", Quantity: 1}}
		storedJSON, err := json.Marshal(stored)
		require.NoError(t, err)

		incoming := []models.CartItem{{ID: "42", Quantity: 2}, {ID: "7", Quantity: 1}}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT items\s+FROM carts\s+WHERE user_id = \$1\s+FOR UPDATE`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(storedJSON))
		mock.ExpectExec(`INSERT INTO carts`).
			WithArgs(userID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		merged, err := repo.MergeCart(ctx, userID, incoming)

		// Assert
		require.NoError(t, err)
		require.Len(t, merged, 2)
		assert.Equal(t, 3, merged[0].Quantity, "quantities for the shared key must add")
		assert.Equal(t, models.ProductID("7"), merged[1].ID)
		assert.NotNil(t, merged[1].AddedAt, "new lines are stamped at merge time")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - First Cart For The User", func(t *testing.T) {
		// Arrange
		incoming := []models.CartItem{{ID: "42", Quantity: 2}}

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT items\s+FROM carts\s+WHERE user_id = \$1\s+FOR UPDATE`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}))
		mock.ExpectExec(`INSERT INTO carts`).
			WithArgs(userID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		merged, err := repo.MergeCart(ctx, userID, incoming)

		// Assert
		require.NoError(t, err)
		require.Len(t, merged, 1)
		assert.Equal(t, 2, merged[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Rolls Back On Upsert Error", func(t *testing.T) {
		// Arrange
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT items\s+FROM carts\s+WHERE user_id = \$1\s+FOR UPDATE`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"items"}))
		mock.ExpectExec(`INSERT INTO carts`).
			WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		// Act
		merged, err := repo.MergeCart(ctx, userID, []models.CartItem{{ID: "42", Quantity: 1}})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, merged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
