package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"maricoleta.org/internal/catalog"
)

func TestCreateFavorite(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery("insert into favorites").
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "collection_id", "created_at"}).
			AddRow("u1", "c1", now))

	fav, err := store.CreateFavorite(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.Equal(t, "u1", fav.UserID)
	require.Equal(t, "c1", fav.CollectionID)
}

func TestCreateFavoriteDuplicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("insert into favorites").
		WithArgs("u1", "c1").
		WillReturnError(&pgconn.PgError{Code: pgErrUniqueViolation})

	_, err := store.CreateFavorite(context.Background(), "u1", "c1")
	require.ErrorIs(t, err, catalog.ErrConflict)
}

func TestCreateFavoriteMissingCollection(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("insert into favorites").
		WithArgs("u1", "gone").
		WillReturnError(&pgconn.PgError{Code: pgErrForeignKeyViolation})

	_, err := store.CreateFavorite(context.Background(), "u1", "gone")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestHasFavorite(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("select 1 from favorites").
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	ok, err := store.HasFavorite(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHasFavoriteAbsent(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("select 1 from favorites").
		WithArgs("u1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"one"}))

	ok, err := store.HasFavorite(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteFavoriteAbsent(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("delete from favorites").
		WithArgs("u1", "c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.DeleteFavorite(context.Background(), "u1", "c1")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCountFavoritesByUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`select count\(\*\) from favorites`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := store.CountFavoritesByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 7, count)
}
