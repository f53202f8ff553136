package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/KaarimHussain/FitFlow-sub000/config"
	"github.com/KaarimHussain/FitFlow-sub000/models"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg config.Config
}

func NewAuthService(db *gorm.DB, cfg config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a user and returns a signed token for it.
func (s *AuthService) Register(username, email, password string) (string, *models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrDuplicateEmail
	}
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrDuplicateUsername
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login verifies credentials and returns a signed token.
// The password hash is always checked, even for unknown emails, so
// response time does not leak which addresses are registered.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	lookupErr := s.db.Where("email = ?", email).First(&user).Error

	ok := utils.CheckPasswordHash(password, user.Password)
	if lookupErr != nil || !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Verify marks the caller's email as verified.
func (s *AuthService) Verify(id uint) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.IsVerified = true
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword stores a one-time reset code and emails it. Mail
// delivery is fire-and-forget: a send failure is logged but the code
// stays valid.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code := utils.GenerateOTP(6)
	user.ResetCode = code
	user.ResetCodeExp = time.Now().Add(s.cfg.OTPExpiry)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, code); err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("reset email not delivered")
	}
	return nil
}

// ResetPassword redeems a one-time code and sets a new password.
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrInvalidOTP
	}
	if user.ResetCode == "" || user.ResetCode != code || time.Now().After(user.ResetCodeExp) {
		return ErrInvalidOTP
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetCode = ""
	user.ResetCodeExp = time.Time{}
	return s.db.Save(&user).Error
}

// EnsureAdmin creates (or promotes) the bootstrap admin account from
// ADMIN_EMAIL/ADMIN_PASSWORD. No-op when the env vars are absent.
func (s *AuthService) EnsureAdmin() error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}
	var user models.User
	err := s.db.Where("email = ?", s.cfg.AdminEmail).First(&user).Error
	switch {
	case err == nil:
		if user.Role != models.RoleAdmin {
			user.Role = models.RoleAdmin
			return s.db.Save(&user).Error
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := utils.HashPassword(s.cfg.AdminPassword)
		if herr != nil {
			return herr
		}
		admin := models.User{
			Username:   "admin",
			Email:      s.cfg.AdminEmail,
			Password:   hashed,
			Role:       models.RoleAdmin,
			IsVerified: true,
		}
		log.Info().Str("email", admin.Email).Msg("seeding admin account")
		return s.db.Create(&admin).Error
	default:
		return err
	}
}
