package analytics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestSummarize(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT mood_detected, COUNT").
		WithArgs("user_7").
		WillReturnRows(sqlmock.NewRows([]string{"mood_detected", "count"}).
			AddRow("happy", 6).
			AddRow("sad", 3).
			AddRow("anxious", 1))

	mock.ExpectQuery("SELECT journal_entries, meditation_minutes, challenges_completed").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"journal_entries", "meditation_minutes", "challenges_completed"}).
			AddRow(4, 55, 2))

	summary, err := repo.Summarize(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalChats)
	assert.Equal(t, 60, summary.MoodDistribution["happy"])
	assert.Equal(t, 30, summary.MoodDistribution["sad"])
	assert.Equal(t, 10, summary.MoodDistribution["anxious"])
	require.NotNil(t, summary.Progress)
	assert.Equal(t, 55, summary.Progress.MeditationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummarizeRoundsPercentages(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT mood_detected, COUNT").
		WithArgs("user_7").
		WillReturnRows(sqlmock.NewRows([]string{"mood_detected", "count"}).
			AddRow("happy", 1).
			AddRow("sad", 2))

	mock.ExpectQuery("SELECT journal_entries, meditation_minutes, challenges_completed").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	summary, err := repo.Summarize(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 33, summary.MoodDistribution["happy"])
	assert.Equal(t, 67, summary.MoodDistribution["sad"])
	assert.Nil(t, summary.Progress)
}

func TestSummarizeNoChats(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT mood_detected, COUNT").
		WithArgs("user_7").
		WillReturnRows(sqlmock.NewRows([]string{"mood_detected", "count"}))

	mock.ExpectQuery("SELECT journal_entries, meditation_minutes, challenges_completed").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	summary, err := repo.Summarize(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalChats)
	assert.Empty(t, summary.MoodDistribution)
}
