package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_Create(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("ana", "Ana", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("ana", "Ana", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Create(context.Background(), "ana", "Ana", "secret"))
	assert.ErrorIs(t, repo.Create(context.Background(), "ana", "Ana", "secret"), ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Authenticate(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	columns := []string{"username", "name", "password_hash", "streak", "last_login", "dark_mode"}
	mock.ExpectQuery(`FROM users`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("ana", "Ana", string(hash), 3, "14-10-2024", true))
	mock.ExpectQuery(`FROM users`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("ana", "Ana", string(hash), 3, nil, false))
	mock.ExpectQuery(`FROM users`).
		WithArgs("bob").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.Authenticate(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, 3, user.Streak)
	assert.Equal(t, "14-10-2024", user.LastLogin)
	assert.True(t, user.DarkMode)

	_, err = repo.Authenticate(context.Background(), "ana", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = repo.Authenticate(context.Background(), "bob", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateLogin(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(`UPDATE users SET streak`).
		WithArgs("ana", 4, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET dark_mode`).
		WithArgs("ghost", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateLogin(context.Background(), "ana", 4, "15-10-2024"))
	assert.ErrorIs(t, repo.SetDarkMode(context.Background(), "ghost", true), ErrNotFound)
	assert.Error(t, repo.UpdateLogin(context.Background(), "ana", 1, "2024-10-15"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
