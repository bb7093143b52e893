package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	"backoffice/infras/jwt"
	jwtMocks "backoffice/infras/jwt/mocks"
	mailerMocks "backoffice/infras/mailer/mocks"
	"backoffice/infras/otel/mocks"
	authMocks "backoffice/internal/domains/auth/mocks"
	authModel "backoffice/internal/domains/auth/model"
	"backoffice/internal/domains/auth/model/dto"
	"backoffice/internal/domains/auth/service"
	userMocks "backoffice/internal/domains/user/mocks"
	userModel "backoffice/internal/domains/user/model"
	"backoffice/shared/failure"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"
)

// bcrypt hash of "password"
const hashedPassword = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type authMockBundle struct {
	userRepo         *userMocks.MockUser
	verificationRepo *authMocks.MockVerification
	jwtService       *jwtMocks.MockJWT
	mailer           *mailerMocks.MockMailer
}

func newAuthService(t *testing.T) (service.Auth, authMockBundle) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bundle := authMockBundle{
		userRepo:         userMocks.NewMockUser(ctrl),
		verificationRepo: authMocks.NewMockVerification(ctrl),
		jwtService:       jwtMocks.NewMockJWT(ctrl),
		mailer:           mailerMocks.NewMockMailer(ctrl),
	}

	cfg := &config.Config{}
	cfg.Verification.CodeExpireMin = 15

	svc := service.New(
		bundle.userRepo,
		bundle.verificationRepo,
		cfg,
		mocks.NewOtel(),
		bundle.jwtService,
		bundle.mailer,
	)

	return svc, bundle
}

func stringPtr(s string) *string {
	return &s
}

func verifiedUser() userModel.User {
	return userModel.User{
		ID:         "user-id-123",
		Email:      "john@example.com",
		Password:   hashedPassword,
		Level:      "user",
		FullName:   stringPtr("John Doe"),
		IsVerified: true,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	registerReq := dto.RegisterRequest{
		Email:    "john@example.com",
		Password: "password",
		FullName: stringPtr("John Doe"),
	}

	t.Run("creates the user and mails a verification code", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.userRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, "john@example.com", user.Email)
				assert.False(t, user.IsVerified)
				assert.True(t, user.Active)

				return nil
			})
		m.verificationRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.verificationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, verification authModel.EmailVerification) error {
				assert.Equal(t, "john@example.com", verification.Email)
				assert.Len(t, verification.Code, 6)

				return nil
			})
		m.mailer.EXPECT().
			SendVerificationCode(gomock.Any(), "john@example.com", "John Doe", gomock.Any(), 15).
			Return(nil)

		err := svc.Register(ctx, registerReq)

		assert.NoError(t, err)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.verificationRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.verificationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().
			SendVerificationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp unavailable"))

		err := svc.Register(ctx, registerReq)

		assert.NoError(t, err)
	})
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()

	storedCode := func(code string, expired bool) authModel.EmailVerification {
		expiresAt := timezone.Now().Add(10 * time.Minute)
		if expired {
			expiresAt = timezone.Now().Add(-10 * time.Minute)
		}

		return authModel.EmailVerification{
			ID:        "verification-id",
			Email:     "john@example.com",
			Code:      code,
			ExpiresAt: expiresAt,
		}
	}

	t.Run("correct code verifies and logs in", func(t *testing.T) {
		svc, m := newAuthService(t)

		user := verifiedUser()
		user.IsVerified = false

		m.verificationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedCode("123456", false), nil)
		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		m.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.verificationRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.jwtService.EXPECT().
			GenerateTokenPair("user-id-123", "john@example.com", "user").
			Return(tokenPair(), nil)

		res, err := svc.Verify(ctx, dto.VerifyEmailRequest{Email: "john@example.com", Code: "123456"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.verificationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedCode("123456", false), nil)

		_, err := svc.Verify(ctx, dto.VerifyEmailRequest{Email: "john@example.com", Code: "654321"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("expired code", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.verificationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedCode("123456", true), nil)

		_, err := svc.Verify(ctx, dto.VerifyEmailRequest{Email: "john@example.com", Code: "123456"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("no outstanding code", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.verificationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(authModel.EmailVerification{}, nil)

		_, err := svc.Verify(ctx, dto.VerifyEmailRequest{Email: "john@example.com", Code: "123456"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_ResendCode(t *testing.T) {
	ctx := context.Background()

	t.Run("unverified user gets a fresh code", func(t *testing.T) {
		svc, m := newAuthService(t)

		user := verifiedUser()
		user.IsVerified = false

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		m.verificationRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.verificationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().
			SendVerificationCode(gomock.Any(), "john@example.com", "John Doe", gomock.Any(), 15).
			Return(nil)

		err := svc.ResendCode(ctx, dto.ResendCodeRequest{Email: "john@example.com"})

		assert.NoError(t, err)
	})

	t.Run("unknown email succeeds silently", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		err := svc.ResendCode(ctx, dto.ResendCodeRequest{Email: "nobody@example.com"})

		assert.NoError(t, err)
	})

	t.Run("already verified email succeeds silently", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verifiedUser(), nil)

		err := svc.ResendCode(ctx, dto.ResendCodeRequest{Email: "john@example.com"})

		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	loginReq := dto.LoginRequest{Email: "john@example.com", Password: "password"}

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verifiedUser(), nil)
		m.jwtService.EXPECT().
			GenerateTokenPair("user-id-123", "john@example.com", "user").
			Return(tokenPair(), nil)
		m.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Login(ctx, loginReq)

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, "refresh-token", res.RefreshToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verifiedUser(), nil)

		_, err := svc.Login(ctx, dto.LoginRequest{Email: "john@example.com", Password: "wrong-password"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("unverified email is forbidden", func(t *testing.T) {
		svc, m := newAuthService(t)

		user := verifiedUser()
		user.IsVerified = false

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("deactivated account is forbidden", func(t *testing.T) {
		svc, m := newAuthService(t)

		user := verifiedUser()
		user.Active = false

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("last login update failure is not fatal", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verifiedUser(), nil)
		m.jwtService.EXPECT().
			GenerateTokenPair("user-id-123", "john@example.com", "user").
			Return(tokenPair(), nil)
		m.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		res, err := svc.Login(ctx, loginReq)

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.jwtService.EXPECT().RefreshTokens("refresh-token").Return(tokenPair(), nil)

		res, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.jwtService.EXPECT().RefreshTokens("bad-token").Return(nil, errors.New("token is expired"))

		_, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("correct current password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verifiedUser(), nil)
		m.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "new-password-123",
		}, "user-id-123")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(verifiedUser(), nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     "new-password-123",
		}, "user-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "new-password-123",
		}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
