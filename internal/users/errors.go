package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientCoins indicates the wallet cannot cover a purchase.
	ErrInsufficientCoins = errors.New("not enough coins")

	// ErrUsernameTaken indicates a signup collision on the username.
	ErrUsernameTaken = errors.New("username already taken")
)
