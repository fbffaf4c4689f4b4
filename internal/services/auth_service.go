package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/internal/session"
	"github.com/jobtrail/jobtrail/pkg/apperrors"
)

type AuthService struct {
	DB       *gorm.DB
	Sessions *session.Store
	Log      *zap.Logger

	ResetTokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, sessions *session.Store, log *zap.Logger, resetTokenTTL time.Duration) *AuthService {
	return &AuthService{
		DB:            db,
		Sessions:      sessions,
		Log:           log,
		ResetTokenTTL: resetTokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.EmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	s.Log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login checks credentials and issues a session.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (string, *models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperrors.InvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, apperrors.InvalidCredentials
	}

	sessionID, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	return sessionID, &user, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// RequestPasswordReset issues a reset token for the account, if it exists.
// The caller always answers 204 so the endpoint can't be used to probe
// which emails are registered. Delivery (email) is out of scope; the
// token is only logged.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.ResetTokenTTL),
	}
	if err := s.DB.WithContext(ctx).Create(token).Error; err != nil {
		return err
	}

	s.Log.Info("password reset token issued",
		zap.Uint("user_id", user.ID),
		zap.String("token", token.Token))
	return nil
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req *dtos.PasswordResetConfirm) error {
	var token models.PasswordResetToken
	err := s.DB.WithContext(ctx).Where("token = ? AND used = ?", req.Token, false).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ResetTokenInvalid
	}
	if err != nil {
		return err
	}

	if token.Expired(time.Now()) {
		return apperrors.ResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", token.UserID).
			Update("password_hash", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&models.PasswordResetToken{}).
			Where("id = ?", token.ID).
			Update("used", true).Error
	})
}
