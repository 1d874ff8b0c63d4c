package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository uses.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository stores user accounts and wallets in the relational database.
type Repository struct {
	pool PgxPool
}

// NewRepository initializes a repo backed by pgxpool.
func NewRepository(pool PgxPool) *Repository {
	if pool == nil {
		panic("users: pgx pool required")
	}
	return &Repository{pool: pool}
}

const userColumns = `id, username, email, coins, streak, last_login, premium_plan, premium_expiry, owned_items, current_theme, current_avatar, achievements, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Coins,
		&u.Streak,
		&u.LastLogin,
		&u.PremiumPlan,
		&u.PremiumExpiry,
		&u.OwnedItems,
		&u.CurrentTheme,
		&u.CurrentAvatar,
		&u.Achievements,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("users: scan user: %w", err)
	}
	return &u, nil
}

// GetByID fetches a user by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// Create inserts a new account. passwordHash is the bcrypt digest, never
// the plaintext.
func (r *Repository) Create(ctx context.Context, username, email, passwordHash string) (*User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	user, err := scanUser(r.pool.QueryRow(ctx, query, username, email, passwordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("users: insert failed: %w", err)
	}
	return user, nil
}

// Credentials returns the id and password hash for a username.
func (r *Repository) Credentials(ctx context.Context, username string) (int64, string, error) {
	var id int64
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE username = $1`, username).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, "", ErrUserNotFound
	}
	if err != nil {
		return 0, "", fmt.Errorf("users: select credentials: %w", err)
	}
	return id, hash, nil
}

// AddCoins credits coins to the wallet in a single statement.
func (r *Repository) AddCoins(ctx context.Context, userID int64, amount int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET coins = coins + $1 WHERE id = $2`, amount, userID)
	if err != nil {
		return fmt.Errorf("users: add coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Purchase debits the item price and records ownership in one transaction.
// The debit is guarded so a concurrent spend can never push the wallet
// negative.
func (r *Repository) Purchase(ctx context.Context, userID, itemID int64, price int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("users: begin purchase: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET coins = coins - $1, owned_items = array_append(owned_items, $2)
		WHERE id = $3 AND coins >= $1
	`, price, itemID, userID)
	if err != nil {
		return fmt.Errorf("users: debit purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var coins int
		err := tx.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1`, userID).Scan(&coins)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("users: check wallet: %w", err)
		}
		return ErrInsufficientCoins
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO purchases (user_id, item_id, price)
		VALUES ($1, $2, $3)
	`, userID, itemID, price); err != nil {
		return fmt.Errorf("users: record purchase: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("users: commit purchase: %w", err)
	}
	return nil
}

// UpdateStreak records a daily check-in and returns the new streak and the
// coins credited for it. The row is locked so concurrent check-ins for the
// same user serialize.
func (r *Repository) UpdateStreak(ctx context.Context, userID int64, now time.Time) (int, int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("users: begin streak update: %w", err)
	}
	defer tx.Rollback(ctx)

	var current int
	var lastLogin *time.Time
	err = tx.QueryRow(ctx, `SELECT streak, last_login FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&current, &lastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrUserNotFound
	}
	if err != nil {
		return 0, 0, fmt.Errorf("users: select streak: %w", err)
	}

	streak := NextStreak(current, lastLogin, now)
	coins := StreakCoins(streak)

	if _, err := tx.Exec(ctx, `
		UPDATE users
		SET streak = $1, last_login = $2, coins = coins + $3
		WHERE id = $4
	`, streak, truncateToDay(now), coins, userID); err != nil {
		return 0, 0, fmt.Errorf("users: update streak: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("users: commit streak update: %w", err)
	}
	return streak, coins, nil
}

// SetPremium assigns a premium plan. A nil expiry means the plan never
// expires.
func (r *Repository) SetPremium(ctx context.Context, userID int64, plan string, expiry *time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET premium_plan = $1, premium_expiry = $2 WHERE id = $3`, plan, expiry, userID)
	if err != nil {
		return fmt.Errorf("users: set premium: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Premium returns the current plan and expiry for a user.
func (r *Repository) Premium(ctx context.Context, userID int64) (string, *time.Time, error) {
	var plan string
	var expiry *time.Time
	err := r.pool.QueryRow(ctx, `SELECT premium_plan, premium_expiry FROM users WHERE id = $1`, userID).Scan(&plan, &expiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("users: select premium: %w", err)
	}
	return plan, expiry, nil
}
