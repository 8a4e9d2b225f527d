package user

import (
	"context"
	"errors"
	"strings"

	"methakadai-be/internal/auth"
	"methakadai-be/internal/logger"
	"methakadai-be/internal/mailer"

	"go.uber.org/zap"
)

// OTPStore issues single-use verification codes keyed by email.
type OTPStore interface {
	Issue(email string) string
	Verify(email, code string) bool
}

// MailSender delivers a rendered mail. Satisfied by mailer.Mailer.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Service interface {
	SendSignupOTP(ctx context.Context, email string) error
	SendResetOTP(ctx context.Context, email string) error
	Signup(ctx context.Context, username, email, password, code string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	ResetPassword(ctx context.Context, email, password, code string) error
	GetProfile(ctx context.Context, username string) (User, error)
	UpdateProfile(ctx context.Context, username string, params UpdateProfileParams) (User, error)
	EnsureAdmin(ctx context.Context, password string) error
}

type service struct {
	repo Repository
	otp  OTPStore
	mail MailSender
}

func NewService(repo Repository, otp OTPStore, mail MailSender) Service {
	return &service{repo: repo, otp: otp, mail: mail}
}

func (s *service) SendSignupOTP(ctx context.Context, email string) error {
	log := logger.FromCtx(ctx)

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	code := s.otp.Issue(email)

	// Delivery is best effort: a flaky relay must not block signup. The code
	// still sits in the store, so a resend request reissues it.
	if err := s.mail.Send(ctx, email, mailer.SignupSubject, mailer.SignupBody(code)); err != nil {
		log.Warn("signup otp mail failed", zap.String("email", email), zap.Error(err))
	}

	log.Info("signup otp issued", zap.String("email", email))
	return nil
}

func (s *service) SendResetOTP(ctx context.Context, email string) error {
	log := logger.FromCtx(ctx)

	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return err
	}

	code := s.otp.Issue(email)

	if err := s.mail.Send(ctx, email, mailer.ResetSubject, mailer.ResetBody(code)); err != nil {
		log.Warn("reset otp mail failed", zap.String("email", email), zap.Error(err))
	}

	log.Info("reset otp issued", zap.String("email", email))
	return nil
}

func (s *service) Signup(ctx context.Context, username, email, password, code string) (string, User, error) {
	log := logger.FromCtx(ctx)

	username = strings.TrimSpace(username)
	if username == "" || email == "" || password == "" {
		return "", User{}, ErrMissingFields
	}

	if !s.otp.Verify(email, code) {
		return "", User{}, ErrInvalidOTP
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     RoleUser,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", User{}, err
	}

	token, err := auth.GenerateJWT(u.ID, u.Username, string(u.Role))
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("signup completed", zap.String("user_id", u.ID), zap.String("email", email))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Info("login failed: email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		log.Info("login failed: password mismatch", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, u.Username, string(u.Role))
	return token, u, err
}

func (s *service) ResetPassword(ctx context.Context, email, password, code string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	if !s.otp.Verify(email, code) {
		return ErrInvalidOTP
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return s.repo.UpdatePasswordByEmail(ctx, email, hashed)
}

func (s *service) GetProfile(ctx context.Context, username string) (User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *service) UpdateProfile(ctx context.Context, username string, params UpdateProfileParams) (User, error) {
	if params.Username != nil && strings.TrimSpace(*params.Username) == "" {
		return User{}, ErrEmptyUsername
	}
	return s.repo.UpdateByUsername(ctx, username, params)
}

// EnsureAdmin creates the bootstrap administrator account if it does not exist.
func (s *service) EnsureAdmin(ctx context.Context, password string) error {
	log := logger.FromCtx(ctx)

	_, err := s.repo.FindByUsername(ctx, AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	if password == "" {
		password = "admin123"
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, User{
		Username: AdminUsername,
		Email:    "admin@methakadai.in",
		Password: hashed,
		Phone:    "9876543210",
		Address:  "MethaKadai Head Office, Tamil Nadu.",
		Role:     RoleAdmin,
	})
	if err != nil {
		return err
	}

	log.Info("admin account seeded", zap.String("username", AdminUsername))
	return nil
}
