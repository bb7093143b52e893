package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"backoffice/config"
	"backoffice/infras/jwt"
	"backoffice/infras/mailer"
	"backoffice/infras/otel"
	"backoffice/internal/domains/auth/model"
	"backoffice/internal/domains/auth/model/dto"
	"backoffice/internal/domains/auth/repository"
	userModel "backoffice/internal/domains/user/model"
	userRepo "backoffice/internal/domains/user/repository"
	"backoffice/shared"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/failure"
	"backoffice/shared/password"
	"backoffice/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Verify(ctx context.Context, req dto.VerifyEmailRequest) (dto.LoginResponse, error)
	ResendCode(ctx context.Context, req dto.ResendCodeRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo         userRepo.User
	verificationRepo repository.Verification
	cfg              *config.Config
	otel             otel.Otel
	jwtService       jwt.JWT
	mailer           mailer.Mailer
}

func New(
	userRepo userRepo.User,
	verificationRepo repository.Verification,
	cfg *config.Config,
	otel otel.Otel,
	jwt jwt.JWT,
	mailer mailer.Mailer,
) Auth {
	return &serviceImpl{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		cfg:              cfg,
		otel:             otel,
		jwtService:       jwt,
		mailer:           mailer,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func verificationFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(constant.ContextGuest, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	fullName := constant.Empty
	if req.FullName != nil {
		fullName = *req.FullName
	}

	return s.issueCode(ctx, req.Email, fullName)
}

// issueCode invalidates any outstanding codes for email, stores a fresh one
// and mails it. A failed send is not fatal; the code stays valid and the
// client can hit resend.
func (s *serviceImpl) issueCode(ctx context.Context, email, name string) error {
	if err := s.verificationRepo.Delete(ctx, verificationFilter(email)); err != nil {
		log.Error().Err(err).Msg("failed to invalidate previous verification codes")

		return fmt.Errorf("failed to invalidate previous verification codes: %w", err)
	}

	code, err := model.NewCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification code")

		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	expireMin := s.cfg.Verification.CodeExpireMin
	expiresAt := timezone.Now().Add(time.Duration(expireMin) * time.Minute)

	if err := s.verificationRepo.Insert(ctx, dto.NewVerification(email, code, expiresAt)); err != nil {
		log.Error().Err(err).Msg("failed to store verification code")

		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.mailer.SendVerificationCode(ctx, email, name, code, expireMin); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to send verification code email")
	}

	return nil
}

func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyEmailRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	verification, err := s.verificationRepo.Get(ctx, verificationFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get verification code")

		return res, fmt.Errorf("failed to get verification code: %w", err)
	}

	if verification.ID == constant.Empty || verification.Code != req.Code {
		return res, failure.BadRequestFromString("invalid verification code") // nolint:wrapcheck
	}

	if verification.Expired(timezone.Now()) {
		return res, failure.BadRequestFromString("verification code has expired") // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		userModel.FieldIsVerified: true,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user.ID,
	}

	if err = s.userRepo.Update(ctx, updatedFields, emailFilter(req.Email)); err != nil {
		log.Error().Err(err).Msg("failed to mark user as verified")

		return res, fmt.Errorf("failed to mark user as verified: %w", err)
	}

	if err := s.verificationRepo.Delete(ctx, verificationFilter(req.Email)); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("failed to delete consumed verification codes")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ResendCode(ctx context.Context, req dto.ResendCodeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResendCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown or already verified addresses succeed silently so the endpoint
	// cannot be used to probe which emails are registered.
	if user.ID == constant.Empty || user.IsVerified {
		log.Info().Str("email", req.Email).Msg("resend requested for ineligible email, ignoring")

		return nil
	}

	fullName := constant.Empty
	if user.FullName != nil {
		fullName = *user.FullName
	}

	return s.issueCode(ctx, user.Email, fullName)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if !user.IsVerified {
		return res, failure.Forbidden("email is not verified") // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Level)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, emailFilter(req.Email)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, user.ID)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
