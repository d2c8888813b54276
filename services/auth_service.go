package services

import (
	"errors"
	"fmt"
	"time"

	"newshub/config"
	"newshub/helper"
	"newshub/mailer"
	"newshub/models"
	"newshub/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = 1 * time.Hour
)

type AuthService interface {
	SignUp(req models.SignUpRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	OAuthSignIn(req models.OAuthSignInRequest) (*models.AuthResponse, error)
	VerifyEmail(req models.VerifyEmailRequest) error
	ForgotPassword(req models.ForgotPasswordRequest) error
	ResetPassword(req models.ResetPasswordRequest) error
	GetProfile(actor models.Actor) (*models.User, error)
	UpdateProfile(actor models.Actor, req models.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(actor models.Actor, req models.UpdatePasswordRequest) error
}

type authService struct {
	userRepo repositories.UserRepository
	mail     mailer.Mailer
	jwt      config.JWTConfig
	baseURL  string
	log      zerolog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, mail mailer.Mailer, jwtCfg config.JWTConfig, baseURL string, log zerolog.Logger) AuthService {
	return &authService{userRepo: userRepo, mail: mail, jwt: jwtCfg, baseURL: baseURL, log: log}
}

func (s *authService) SignUp(req models.SignUpRequest) (*models.AuthResponse, error) {
	if verr := helper.Validate(req); verr != nil {
		return nil, verr
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.fail(err, "failed to check existing user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.fail(err, "failed to hash password")
	}
	password := string(hashed)

	token, err := helper.GenerateToken()
	if err != nil {
		return nil, s.fail(err, "failed to generate verification token")
	}
	expires := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		Password:            &password,
		Role:                models.RoleUser,
		VerificationToken:   &token,
		VerificationExpires: &expires,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrConflict
		}
		return nil, s.fail(err, "failed to create user")
	}

	// Both sends are best effort; signup succeeds regardless.
	if err := s.mail.SendWelcome(user.Email, user.Name); err != nil {
		s.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to send welcome email")
	}
	link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, token)
	if err := s.mail.SendVerification(user.Email, link); err != nil {
		s.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to send verification email")
	}

	return s.issueToken(user)
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if verr := helper.Validate(req); verr != nil {
		return nil, verr
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, s.fail(err, "failed to load user")
	}

	// OAuth-only accounts have no password to compare.
	if user.Password == nil {
		return nil, models.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrUnauthorized
	}

	return s.issueToken(user)
}

// OAuthSignIn resolves the identity asserted by an external provider,
// creating a verified passwordless account on first sign-in.
func (s *authService) OAuthSignIn(req models.OAuthSignInRequest) (*models.AuthResponse, error) {
	if verr := helper.Validate(req); verr != nil {
		return nil, verr
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err == nil {
		return s.issueToken(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.fail(err, "failed to load user")
	}

	user = &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       models.RoleUser,
		IsVerified: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent first sign-in created the account; use it.
			user, err = s.userRepo.GetByEmail(req.Email)
			if err != nil {
				return nil, s.fail(err, "failed to re-fetch user after conflict")
			}
			return s.issueToken(user)
		}
		return nil, s.fail(err, "failed to create user")
	}

	if err := s.mail.SendWelcome(user.Email, user.Name); err != nil {
		s.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to send welcome email")
	}

	return s.issueToken(user)
}

func (s *authService) VerifyEmail(req models.VerifyEmailRequest) error {
	if verr := helper.Validate(req); verr != nil {
		return verr
	}

	user, err := s.userRepo.GetByVerificationToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load user by verification token")
	}
	if user.VerificationExpires == nil || user.VerificationExpires.Before(time.Now()) {
		return models.ErrNotFound
	}

	user.IsVerified = true
	user.VerificationToken = nil
	user.VerificationExpires = nil
	if err := s.userRepo.Update(user); err != nil {
		return s.fail(err, "failed to mark user verified")
	}
	return nil
}

func (s *authService) ForgotPassword(req models.ForgotPasswordRequest) error {
	if verr := helper.Validate(req); verr != nil {
		return verr
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether an address is registered.
			return nil
		}
		return s.fail(err, "failed to load user")
	}

	token, err := helper.GenerateToken()
	if err != nil {
		return s.fail(err, "failed to generate reset token")
	}
	expires := time.Now().Add(passwordResetTokenTTL)
	user.PasswordResetToken = &token
	user.PasswordResetExpires = &expires
	if err := s.userRepo.Update(user); err != nil {
		return s.fail(err, "failed to store reset token")
	}

	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.baseURL, token)
	if err := s.mail.SendPasswordReset(user.Email, link); err != nil {
		s.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to send password reset email")
	}
	return nil
}

func (s *authService) ResetPassword(req models.ResetPasswordRequest) error {
	if verr := helper.Validate(req); verr != nil {
		return verr
	}

	user, err := s.userRepo.GetByPasswordResetToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load user by reset token")
	}
	if user.PasswordResetExpires == nil || user.PasswordResetExpires.Before(time.Now()) {
		return models.ErrNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.fail(err, "failed to hash password")
	}
	password := string(hashed)
	user.Password = &password
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil
	if err := s.userRepo.Update(user); err != nil {
		return s.fail(err, "failed to update password")
	}
	return nil
}

func (s *authService) GetProfile(actor models.Actor) (*models.User, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load profile")
	}
	return user, nil
}

func (s *authService) UpdateProfile(actor models.Actor, req models.UpdateProfileRequest) (*models.User, error) {
	if actor.ID == 0 {
		return nil, models.ErrUnauthorized
	}
	if verr := helper.Validate(req); verr != nil {
		return nil, verr
	}

	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, s.fail(err, "failed to load profile")
	}

	user.Name = req.Name
	if err := s.userRepo.Update(user); err != nil {
		return nil, s.fail(err, "failed to update profile")
	}
	return user, nil
}

func (s *authService) UpdatePassword(actor models.Actor, req models.UpdatePasswordRequest) error {
	if actor.ID == 0 {
		return models.ErrUnauthorized
	}
	if verr := helper.Validate(req); verr != nil {
		return verr
	}

	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return s.fail(err, "failed to load user")
	}

	if user.Password == nil || bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.CurrentPassword)) != nil {
		return &models.ValidationError{Fields: map[string][]string{
			"current_password": {"current password is incorrect"},
		}}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return s.fail(err, "failed to hash password")
	}
	password := string(hashed)
	user.Password = &password
	if err := s.userRepo.Update(user); err != nil {
		return s.fail(err, "failed to update password")
	}
	return nil
}

func (s *authService) issueToken(user *models.User) (*models.AuthResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(models.NormalizeRole(string(user.Role))),
		"exp":     now.Add(s.jwt.Expiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwt.Secret)
	if err != nil {
		return nil, s.fail(err, "failed to sign token")
	}

	return &models.AuthResponse{Token: signed, User: *user}, nil
}

func (s *authService) fail(err error, msg string) error {
	s.log.Error().Err(err).Msg(msg)
	return models.ErrInternal
}
