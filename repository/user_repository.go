package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"

	"dress-diary/models"
	"dress-diary/utils"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn *sql.DB) *UserRepository {
	return &UserRepository{db: conn}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// Create stores a new user with a bcrypt hash of password
func (r *UserRepository) Create(ctx context.Context, username, name, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`,
		username, name, string(hash),
	)
	if err != nil {
		log.Errorf("❌ Error creating user: %v", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if affected == 0 {
		return ErrUserExists
	}

	log.Infof("✓ Created user %s", username)
	return nil
}

// Get returns one user
func (r *UserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT username, name, password_hash, streak, to_char(last_login, 'DD-MM-YYYY'), dark_mode
		FROM users
		WHERE username = $1`,
		username,
	).Scan(&user.Username, &user.Name, &user.PasswordHash, &user.Streak, &lastLogin, &user.DarkMode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.LastLogin = lastLogin.String
	return &user, nil
}

// Authenticate returns the user when password matches
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.Get(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateLogin stores the streak and the dd-MM-yyyy date of the latest login
func (r *UserRepository) UpdateLogin(ctx context.Context, username string, streak int, lastLogin string) error {
	date, err := utils.ParseDMY(lastLogin)
	if err != nil {
		return err
	}
	return r.exec(ctx, `UPDATE users SET streak = $2, last_login = $3 WHERE username = $1`, username, streak, date)
}

// SetDarkMode stores the theme preference
func (r *UserRepository) SetDarkMode(ctx context.Context, username string, enabled bool) error {
	return r.exec(ctx, `UPDATE users SET dark_mode = $2 WHERE username = $1`, username, enabled)
}

func (r *UserRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
