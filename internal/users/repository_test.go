package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock), mock
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "username", "email", "coins", "streak", "last_login",
		"premium_plan", "premium_expiry", "owned_items", "current_theme",
		"current_avatar", "achievements", "created_at",
	})
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, username, email").
		WithArgs(int64(7)).
		WillReturnRows(userRows().AddRow(
			int64(7), "asha", "asha@example.com", 120, 3, (*time.Time)(nil),
			"free", (*time.Time)(nil), []int64{17}, "dark", "", []string{}, time.Now(),
		))

	user, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "asha", user.Username)
	assert.Equal(t, 120, user.Coins)
	assert.Equal(t, []int64{17}, user.OwnedItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, username, email").
		WithArgs(int64(99)).
		WillReturnRows(userRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddCoins(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE users SET coins = coins \\+").
		WithArgs(5, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.AddCoins(context.Background(), 7, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCoinsUnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE users SET coins = coins \\+").
		WithArgs(5, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AddCoins(context.Background(), 99, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPurchase(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(50, int64(1), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO purchases").
		WithArgs(int64(7), int64(1), 50).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Purchase(context.Background(), 7, 1, 50))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseInsufficientCoins(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(150, int64(9), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT coins FROM users").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"coins"}).AddRow(20))
	mock.ExpectRollback()

	err := repo.Purchase(context.Background(), 7, 9, 150)
	assert.ErrorIs(t, err, ErrInsufficientCoins)
}

func TestPurchaseUnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(50, int64(1), int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT coins FROM users").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"coins"}))
	mock.ExpectRollback()

	err := repo.Purchase(context.Background(), 99, 1, 50)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPurchaseRecordFailureRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs(50, int64(1), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO purchases").
		WithArgs(int64(7), int64(1), 50).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Purchase(context.Background(), 7, 1, 50)
	assert.ErrorContains(t, err, "record purchase")
}

func TestUpdateStreakConsecutiveDay(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT streak, last_login FROM users").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"streak", "last_login"}).AddRow(2, &yesterday))
	mock.ExpectExec("UPDATE users").
		WithArgs(3, truncateToDay(now), 15, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	streak, coins, err := repo.UpdateStreak(context.Background(), 7, now)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
	assert.Equal(t, 15, coins)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStreakUnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT streak, last_login FROM users").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"streak", "last_login"}))
	mock.ExpectRollback()

	_, _, err := repo.UpdateStreak(context.Background(), 99, time.Now())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetPremium(t *testing.T) {
	repo, mock := newMockRepo(t)

	expiry := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE users SET premium_plan").
		WithArgs("pro", &expiry, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetPremium(context.Background(), 7, "pro", &expiry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPremium(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT premium_plan, premium_expiry FROM users").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"premium_plan", "premium_expiry"}).AddRow("lifetime", (*time.Time)(nil)))

	plan, expiry, err := repo.Premium(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "lifetime", plan)
	assert.Nil(t, expiry)
}
