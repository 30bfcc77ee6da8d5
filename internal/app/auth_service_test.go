package app

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"legalens/internal/pkg/jwtutil"
	"legalens/internal/repository"
)

func TestRegisterValidation(t *testing.T) {
	service := NewAuthService(nil, "secret", time.Hour)

	cases := []RegisterInput{
		{Username: "", Email: "a@example.com", Password: "password123"},
		{Username: "alice", Email: "", Password: "password123"},
		{Username: "alice", Email: "a@example.com", Password: "short"},
	}
	for _, input := range cases {
		_, err := service.Register(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	gormDB, mock := newMockDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
		AddRow(1, "alice", "alice@example.com", string(hash))
	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(rows)

	service := NewAuthService(repository.NewUserRepository(gormDB), "secret", time.Hour)

	_, err = service.Login(LoginInput{Username: "alice", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginUnknownUser(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}))

	service := NewAuthService(repository.NewUserRepository(gormDB), "secret", time.Hour)

	_, err := service.Login(LoginInput{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	gormDB, mock := newMockDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
		AddRow(3, "alice", "alice@example.com", string(hash))
	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(rows)

	service := NewAuthService(repository.NewUserRepository(gormDB), "secret", time.Hour)

	result, err := service.Login(LoginInput{Username: "alice", Password: "correct-password"})
	require.NoError(t, err)

	claims, err := jwtutil.ParseToken("secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}
