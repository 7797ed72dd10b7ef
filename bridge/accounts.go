package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"dress-diary/models"
	"dress-diary/repository"
	"dress-diary/utils"
)

// AccountStore implements Accounts over the user repository
type AccountStore struct {
	users repository.UserRepositoryInterface
	now   func() time.Time
}

// Ensure AccountStore implements Accounts
var _ Accounts = (*AccountStore)(nil)

// NewAccountStore creates a new AccountStore
func NewAccountStore(users repository.UserRepositoryInterface) *AccountStore {
	return &AccountStore{users: users, now: time.Now}
}

// CreateUser signs a new user up
func (a *AccountStore) CreateUser(ctx context.Context, username, name, password string) error {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || name == "" || password == "" {
		return fmt.Errorf("username, name and password are required")
	}
	return a.users.Create(ctx, username, name, password)
}

// LoginUser checks the password and advances the daily login streak
func (a *AccountStore) LoginUser(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	today := utils.Today(a.now(), time.UTC)
	streak := NextStreak(user.Streak, user.LastLogin, today)
	if streak != user.Streak || user.LastLogin != utils.FormatDMY(today) {
		if err := a.users.UpdateLogin(ctx, user.Username, streak, utils.FormatDMY(today)); err != nil {
			return nil, err
		}
		log.Debugf("🔍 Login streak of %s: %d -> %d", user.Username, user.Streak, streak)
		user.Streak = streak
		user.LastLogin = utils.FormatDMY(today)
	}
	return user, nil
}

// NextStreak returns the streak after logging in on today given the
// dd-MM-yyyy date of the previous login. Logging in again the same day keeps
// the streak, the next day extends it, any gap restarts it at 1.
func NextStreak(current int, lastLogin string, today time.Time) int {
	if lastLogin == "" {
		return 1
	}
	last, err := utils.ParseDMY(lastLogin)
	if err != nil {
		return 1
	}
	switch utils.DaysBetween(last, today) {
	case 0:
		if current < 1 {
			return 1
		}
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// RecoverUser returns an existing user without checking credentials
func (a *AccountStore) RecoverUser(ctx context.Context, username string) (*models.User, error) {
	return a.users.Get(ctx, username)
}

// CurrentName returns the display name of username
func (a *AccountStore) CurrentName(ctx context.Context, username string) (string, error) {
	user, err := a.users.Get(ctx, username)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}

// CurrentStreak returns the login streak of username
func (a *AccountStore) CurrentStreak(ctx context.Context, username string) (int, error) {
	user, err := a.users.Get(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.Streak, nil
}

// DarkMode returns the theme preference of username
func (a *AccountStore) DarkMode(ctx context.Context, username string) (bool, error) {
	user, err := a.users.Get(ctx, username)
	if err != nil {
		return false, err
	}
	return user.DarkMode, nil
}

// SetDarkMode stores the theme preference of username
func (a *AccountStore) SetDarkMode(ctx context.Context, username string, enabled bool) error {
	return a.users.SetDarkMode(ctx, username, enabled)
}
