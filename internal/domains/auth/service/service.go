package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/internal/domains/auth/model"
	"cruisevoyager/internal/domains/auth/model/dto"
	"cruisevoyager/internal/domains/auth/repository"
	notification "cruisevoyager/internal/domains/notification/service"
	userModel "cruisevoyager/internal/domains/user/model"
	userDto "cruisevoyager/internal/domains/user/model/dto"
	userRepo "cruisevoyager/internal/domains/user/repository"
	"cruisevoyager/shared"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"
	"cruisevoyager/shared/password"
	"cruisevoyager/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (userDto.UserResponse, error)
	GetUser(ctx context.Context, userID string) (userDto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req userDto.UpdateProfileRequest) (userDto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req userDto.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, token string) error
}

type serviceImpl struct {
	userRepo     userRepo.User
	tokenRepo    repository.Token
	notification notification.Notification
	cfg          *config.Config
	otel         otel.Otel
}

func New(users userRepo.User, tokens repository.Token, notif notification.Notification, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo:     users,
		tokenRepo:    tokens,
		notification: notif,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	usernameTaken, err := s.userRepo.ExistByUsername(ctx, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to check username")

		return res, fmt.Errorf("failed to check username: %w", err)
	}

	if usernameTaken {
		return res, failure.BadRequestFromString("Username already exists") // nolint:wrapcheck
	}

	emailTaken, err := s.userRepo.ExistByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email")

		return res, fmt.Errorf("failed to check email: %w", err)
	}

	if emailTaken {
		return res, failure.BadRequestFromString("Email already exists") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hashed)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	token := dto.NewToken(user.ID, model.KindEmailVerification, verificationTokenTTL)
	if err = s.tokenRepo.Insert(ctx, token); err != nil {
		log.Error().Err(err).Msg("failed to create verification token")

		return res, fmt.Errorf("failed to create verification token: %w", err)
	}

	// Verification mail is best-effort; registration succeeds regardless.
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notification.SendVerificationEmail(c, user, token.Token); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("failed to send verification email")
		}
	}()

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// A missing user and a wrong password answer identically.
	if user.ID == constant.Empty {
		return res, failure.Unauthorized("Invalid username or password") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized("Invalid username or password") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetUser(ctx context.Context, userID string) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("Not authenticated") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, userID string, req userDto.UpdateProfileRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (userDto.UpdateProfileRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("Not authenticated") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, userID)

	if err = s.userRepo.Update(ctx, fields, userID); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return res, fmt.Errorf("failed to update profile: %w", err)
	}

	user, err = s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload user")

		return res, fmt.Errorf("failed to reload user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, userID string, req userDto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.Unauthorized("Not authenticated") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("Current password is incorrect") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.updatePassword(ctx, userID, hashed)
}

// ForgotPassword never reveals whether the address is registered.
func (s *serviceImpl) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForgotPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.ID == constant.Empty {
		log.Info().Msg("password reset requested for unknown email")

		return nil
	}

	if err = s.tokenRepo.DeleteByUser(ctx, user.ID, model.KindPasswordReset); err != nil {
		log.Error().Err(err).Msg("failed to clear previous reset tokens")

		return fmt.Errorf("failed to clear previous reset tokens: %w", err)
	}

	token := dto.NewToken(user.ID, model.KindPasswordReset, passwordResetTokenTTL)
	if err = s.tokenRepo.Insert(ctx, token); err != nil {
		log.Error().Err(err).Msg("failed to create reset token")

		return fmt.Errorf("failed to create reset token: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notification.SendPasswordResetEmail(c, user, token.Token); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("failed to send reset email")
		}
	}()

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()

	token, err := s.tokenRepo.GetByToken(ctx, req.Token, model.KindPasswordReset)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reset token")

		return fmt.Errorf("failed to get reset token: %w", err)
	}

	if token.ID == constant.Empty || token.Expired(timezone.Now()) {
		return failure.BadRequestFromString("Invalid or expired token") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.updatePassword(ctx, token.UserID, hashed); err != nil {
		return err
	}

	if err = s.tokenRepo.DeleteByID(ctx, token.ID); err != nil {
		log.Error().Err(err).Msg("failed to consume reset token")

		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	return nil
}

func (s *serviceImpl) VerifyEmail(ctx context.Context, rawToken string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyEmail")
	defer scope.End()

	token, err := s.tokenRepo.GetByToken(ctx, rawToken, model.KindEmailVerification)
	if err != nil {
		log.Error().Err(err).Msg("failed to get verification token")

		return fmt.Errorf("failed to get verification token: %w", err)
	}

	if token.ID == constant.Empty || token.Expired(timezone.Now()) {
		return failure.BadRequestFromString("Invalid or expired token") // nolint:wrapcheck
	}

	fields := map[string]any{
		userModel.FieldEmailVerified: true,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     token.UserID,
	}

	if err = s.userRepo.Update(ctx, fields, token.UserID); err != nil {
		log.Error().Err(err).Msg("failed to mark email verified")

		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	if err = s.tokenRepo.DeleteByID(ctx, token.ID); err != nil {
		log.Error().Err(err).Msg("failed to consume verification token")

		return fmt.Errorf("failed to consume verification token: %w", err)
	}

	return nil
}

func (s *serviceImpl) updatePassword(ctx context.Context, userID, hashed string) error {
	fields := map[string]any{
		userModel.FieldPassword:  hashed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.userRepo.Update(ctx, fields, userID); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
