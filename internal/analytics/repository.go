package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"math"
)

// Progress is one row of tracked wellness activity.
type Progress struct {
	JournalEntries      int `json:"journal_entries"`
	MeditationMinutes   int `json:"meditation_minutes"`
	ChallengesCompleted int `json:"challenges_completed"`
}

// Summary is the analytics payload for one user.
type Summary struct {
	MoodDistribution map[string]int `json:"moodDistribution"`
	TotalChats       int            `json:"totalChats"`
	Progress         *Progress      `json:"progress"`
}

// Repository reads mood trends and progress from the relational database.
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a repo backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("analytics: db required")
	}
	return &Repository{db: db}
}

// Summarize aggregates mood counts into whole percentages and attaches the
// progress row, if any. Sessions are keyed "user_{id}".
func (r *Repository) Summarize(ctx context.Context, userID int64) (*Summary, error) {
	sessionID := fmt.Sprintf("user_%d", userID)

	rows, err := r.db.QueryContext(ctx, `
		SELECT mood_detected, COUNT(*)
		FROM chat_messages
		WHERE session_id = $1 AND mood_detected IS NOT NULL
		GROUP BY mood_detected
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("analytics: query moods: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var mood string
		var count int
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, fmt.Errorf("analytics: scan mood row: %w", err)
		}
		counts[mood] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics: iterate moods: %w", err)
	}

	distribution := make(map[string]int, len(counts))
	for mood, count := range counts {
		if total > 0 {
			distribution[mood] = int(math.Round(float64(count) / float64(total) * 100))
		} else {
			distribution[mood] = 0
		}
	}

	summary := &Summary{
		MoodDistribution: distribution,
		TotalChats:       total,
	}

	var progress Progress
	err = r.db.QueryRowContext(ctx, `
		SELECT journal_entries, meditation_minutes, challenges_completed
		FROM user_progress
		WHERE user_id = $1
	`, userID).Scan(&progress.JournalEntries, &progress.MeditationMinutes, &progress.ChallengesCompleted)
	switch {
	case err == sql.ErrNoRows:
		// No progress row yet; the summary ships without one.
	case err != nil:
		return nil, fmt.Errorf("analytics: query progress: %w", err)
	default:
		summary.Progress = &progress
	}

	return summary, nil
}
