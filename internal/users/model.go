package users

import "time"

// User is one account row. Coins and streak are the gamification wallet;
// premium fields gate paid features.
type User struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Coins         int        `json:"coins"`
	Streak        int        `json:"streak"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	PremiumPlan   string     `json:"premium_plan"`
	PremiumExpiry *time.Time `json:"premium_expiry,omitempty"`
	OwnedItems    []int64    `json:"owned_items"`
	CurrentTheme  string     `json:"current_theme"`
	CurrentAvatar string     `json:"current_avatar"`
	Achievements  []string   `json:"achievements"`
	CreatedAt     time.Time  `json:"created_at"`
}
