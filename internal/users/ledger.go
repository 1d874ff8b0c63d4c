package users

import "time"

// streakCoinCap bounds the daily streak reward at seven days' worth.
const streakCoinCap = 7

// NextStreak computes the new streak for a check-in at now, given the
// current streak and the previous check-in date. Consecutive days extend
// the streak, a repeat check-in today keeps it, anything else resets to 1.
func NextStreak(current int, lastLogin *time.Time, now time.Time) int {
	if lastLogin == nil {
		return 1
	}

	today := truncateToDay(now)
	last := truncateToDay(*lastLogin)
	switch int(today.Sub(last).Hours() / 24) {
	case 1:
		return current + 1
	case 0:
		return current
	default:
		return 1
	}
}

// StreakCoins returns the coin reward for a streak day, capped at 35.
func StreakCoins(streak int) int {
	if streak > streakCoinCap {
		streak = streakCoinCap
	}
	if streak < 0 {
		streak = 0
	}
	return streak * 5
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
