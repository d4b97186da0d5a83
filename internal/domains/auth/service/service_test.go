package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel/mocks"
	authRepository "cruisevoyager/internal/domains/auth/repository"
	"cruisevoyager/internal/domains/auth/service"
	bookingModel "cruisevoyager/internal/domains/booking/model"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	userModel "cruisevoyager/internal/domains/user/model"
	userDto "cruisevoyager/internal/domains/user/model/dto"
	userRepository "cruisevoyager/internal/domains/user/repository"
	"cruisevoyager/shared/failure"

	"cruisevoyager/internal/domains/auth/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notificationRecorder captures outbound mail so tests can follow the token
// flows without a mail server.
type notificationRecorder struct {
	err           error
	confirmations chan string
	verifications chan string
	resets        chan string
}

func newNotificationRecorder() *notificationRecorder {
	return &notificationRecorder{
		confirmations: make(chan string, 4),
		verifications: make(chan string, 4),
		resets:        make(chan string, 4),
	}
}

func (n *notificationRecorder) SendBookingConfirmation(_ context.Context, booking bookingModel.Booking, _ cruiseModel.Cruise) error {
	n.confirmations <- booking.ID

	return n.err
}

func (n *notificationRecorder) SendVerificationEmail(_ context.Context, _ userModel.User, token string) error {
	n.verifications <- token

	return n.err
}

func (n *notificationRecorder) SendPasswordResetEmail(_ context.Context, _ userModel.User, token string) error {
	n.resets <- token

	return n.err
}

func receiveToken(t *testing.T, tokens chan string) string {
	t.Helper()

	select {
	case token := <-tokens:
		return token
	case <-time.After(2 * time.Second):
		t.Fatal("expected an email to be sent")

		return ""
	}
}

func newAuthService(t *testing.T) (service.Auth, *notificationRecorder) {
	t.Helper()

	notif := newNotificationRecorder()
	svc := service.New(
		userRepository.NewMemory(),
		authRepository.NewMemory(),
		notif,
		&config.Config{},
		mocks.NewOtel(),
	)

	return svc, notif
}

func registerDemo(t *testing.T, svc service.Auth) userDto.UserResponse {
	t.Helper()

	res, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:  "demo",
		Email:     "demo@example.com",
		Password:  "password123",
		FirstName: "Demo",
	})
	require.NoError(t, err)

	return res
}

func TestAuthService_Register(t *testing.T) {
	svc, notif := newAuthService(t)

	res := registerDemo(t, svc)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "demo", res.Username)
	assert.False(t, res.EmailVerified)

	// The verification mail carries the freshly minted token.
	assert.NotEmpty(t, receiveToken(t, notif.verifications))
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	svc, _ := newAuthService(t)
	registerDemo(t, svc)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "demo",
		Email:    "other@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Username: "other",
		Email:    "demo@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAuthService_Register_MailFailureDoesNotBlock(t *testing.T) {
	svc, notif := newAuthService(t)
	notif.err = assert.AnError

	res := registerDemo(t, svc)
	assert.NotEmpty(t, res.ID)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService(t)
	registerDemo(t, svc)

	res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "demo", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "demo", res.Username)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	registerDemo(t, svc)

	// Unknown username and wrong password answer identically.
	_, badUser := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "password123"})
	_, badPass := svc.Login(context.Background(), dto.LoginRequest{Username: "demo", Password: "wrong"})

	require.Error(t, badUser)
	require.Error(t, badPass)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(badUser))
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(badPass))
	assert.Equal(t, badUser.Error(), badPass.Error())
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	user := registerDemo(t, svc)

	err := svc.ChangePassword(context.Background(), user.ID, userDto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	err = svc.ChangePassword(context.Background(), user.ID, userDto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "demo", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestAuthService_ForgotPassword_UnknownEmailDoesNotLeak(t *testing.T) {
	svc, notif := newAuthService(t)
	registerDemo(t, svc)

	err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Empty(t, notif.resets)
}

func TestAuthService_ResetPasswordFlow(t *testing.T) {
	svc, notif := newAuthService(t)
	registerDemo(t, svc)

	err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "demo@example.com"})
	require.NoError(t, err)

	token := receiveToken(t, notif.resets)

	err = svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: token, NewPassword: "newpassword"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "demo", Password: "newpassword"})
	assert.NoError(t, err)

	// A consumed token cannot be replayed.
	err = svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: token, NewPassword: "another"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAuthService_VerifyEmailFlow(t *testing.T) {
	svc, notif := newAuthService(t)
	user := registerDemo(t, svc)

	token := receiveToken(t, notif.verifications)

	require.NoError(t, svc.VerifyEmail(context.Background(), token))

	res, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, res.EmailVerified)

	err = svc.VerifyEmail(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAuthService_VerifyEmail_InvalidToken(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.VerifyEmail(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _ := newAuthService(t)
	user := registerDemo(t, svc)

	_, err := svc.UpdateProfile(context.Background(), user.ID, userDto.UpdateProfileRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	res, err := svc.UpdateProfile(context.Background(), user.ID, userDto.UpdateProfileRequest{
		FirstName: "Updated",
		LastName:  "Voyager",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", res.FirstName)
	assert.Equal(t, "Voyager", res.LastName)
}
