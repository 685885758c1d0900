package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bcorey85/timestamp-api/internal/models"
	"github.com/bcorey85/timestamp-api/internal/store"
	"github.com/bcorey85/timestamp-api/internal/utils"
)

const resetTokenTTL = 10 * time.Minute

// Mailer delivers the password reset link. The SMTP implementation lives
// in internal/mailer; tests swap in a fake.
type Mailer interface {
	SendPasswordReset(email, resetLink string) error
}

type AuthService struct {
	db          *gorm.DB
	mailer      Mailer
	frontendURL string
	now         func() time.Time
}

func NewAuthService(db *gorm.DB, mailer Mailer, frontendURL string) *AuthService {
	return &AuthService{db: db, mailer: mailer, frontendURL: frontendURL, now: time.Now}
}

func (s *AuthService) Register(req *models.UserRegisterRequest) (*models.User, error) {
	st := store.NewStores(s.db)

	existing, err := st.Users.Find(map[string]interface{}{"email": req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		LastLogin: s.now(),
	}
	if err := st.Users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(req *models.UserLoginRequest) (*models.User, error) {
	st := store.NewStores(s.db)

	user, err := st.Users.Find(map[string]interface{}{"email": req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return st.Users.Update(user.ID, map[string]interface{}{"last_login": s.now()})
}

// ForgotPassword issues a reset token and emails the reset link. Only the
// sha256 of the token is stored. An unknown email is not an error; the
// response is masked so the endpoint cannot be used to probe accounts.
func (s *AuthService) ForgotPassword(email string) error {
	st := store.NewStores(s.db)

	user, err := st.Users.Find(map[string]interface{}{"email": email})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	resetToken := hex.EncodeToString(buf)
	resetHash := sha256.Sum256([]byte(resetToken))
	expires := s.now().Add(resetTokenTTL)

	if _, err := st.Users.Update(user.ID, map[string]interface{}{
		"password_reset_link":    hex.EncodeToString(resetHash[:]),
		"password_reset_expires": expires,
	}); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/auth/reset-password/%s", s.frontendURL, resetToken)
	if err := s.mailer.SendPasswordReset(email, resetLink); err != nil {
		logrus.WithError(err).Error("failed to send password reset email")
		return err
	}
	return nil
}

// ResetPassword redeems a reset token, sets the new password through the
// hashing path, and clears the reset fields.
func (s *AuthService) ResetPassword(resetToken, password string) (*models.User, error) {
	st := store.NewStores(s.db)

	resetHash := sha256.Sum256([]byte(resetToken))
	user, err := st.Users.Find(map[string]interface{}{"password_reset_link": hex.EncodeToString(resetHash[:])})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrBadRequest
	}
	if user.PasswordResetExpires != nil && user.PasswordResetExpires.Before(s.now()) {
		return nil, ErrBadRequest
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := st.Users.UpdatePassword(user.ID, hashed); err != nil {
		return nil, err
	}

	return st.Users.Update(user.ID, map[string]interface{}{
		"password_reset_link":    nil,
		"password_reset_expires": nil,
	})
}
