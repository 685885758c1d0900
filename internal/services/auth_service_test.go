package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/utils"
)

type fakeMailer struct {
	email     string
	resetLink string
	err       error
}

func (m *fakeMailer) SendPasswordReset(email, resetLink string) error {
	m.email = email
	m.resetLink = resetLink
	return m.err
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, &fakeMailer{}, "http://localhost:3000")

	user, err := svc.Register(&models.UserRegisterRequest{
		Email:    "new@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "password", user.Password)

	loggedIn, err := svc.Login(&models.UserLoginRequest{
		Email:    "new@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, &fakeMailer{}, "http://localhost:3000")

	req := &models.UserRegisterRequest{Email: "dup@example.com", Password: "password"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestLoginBadCredentials(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, &fakeMailer{}, "http://localhost:3000")

	_, err := svc.Register(&models.UserRegisterRequest{
		Email:    "who@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	_, err = svc.Login(&models.UserLoginRequest{Email: "who@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&models.UserLoginRequest{Email: "nobody@example.com", Password: "password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotAndResetPassword(t *testing.T) {
	db := setupDB(t)
	mailer := &fakeMailer{}
	svc := NewAuthService(db, mailer, "http://localhost:3000")

	user, err := svc.Register(&models.UserRegisterRequest{
		Email:    "reset@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("reset@example.com"))
	assert.Equal(t, "reset@example.com", mailer.email)

	parts := strings.Split(mailer.resetLink, "/")
	token := parts[len(parts)-1]
	require.NotEmpty(t, token)

	// Only the hash is stored, never the token itself.
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.PasswordResetLink)
	assert.NotEqual(t, token, *stored.PasswordResetLink)

	reset, err := svc.ResetPassword(token, "password2")
	require.NoError(t, err)
	assert.Nil(t, reset.PasswordResetLink)
	assert.Nil(t, reset.PasswordResetExpires)

	match, err := utils.VerifyPassword("password2", reset.Password)
	require.NoError(t, err)
	assert.True(t, match)

	_, err = svc.Login(&models.UserLoginRequest{Email: "reset@example.com", Password: "password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPasswordUnknownEmailIsMasked(t *testing.T) {
	db := setupDB(t)
	mailer := &fakeMailer{}
	svc := NewAuthService(db, mailer, "http://localhost:3000")

	require.NoError(t, svc.ForgotPassword("nobody@example.com"))
	assert.Empty(t, mailer.email)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	db := setupDB(t)
	mailer := &fakeMailer{}
	svc := NewAuthService(db, mailer, "http://localhost:3000")

	_, err := svc.Register(&models.UserRegisterRequest{
		Email:    "late@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	issued := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(issued)
	require.NoError(t, svc.ForgotPassword("late@example.com"))

	parts := strings.Split(mailer.resetLink, "/")
	token := parts[len(parts)-1]

	svc.now = fixedClock(issued.Add(resetTokenTTL + time.Minute))
	_, err = svc.ResetPassword(token, "password2")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, &fakeMailer{}, "http://localhost:3000")

	_, err := svc.ResetPassword("not-a-real-token", "password2")
	assert.ErrorIs(t, err, ErrBadRequest)
}
