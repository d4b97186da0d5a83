package auth

import (
	"net/http"

	"cruisevoyager/infras/otel"
	"cruisevoyager/internal/domains/auth/model/dto"
	"cruisevoyager/internal/domains/auth/service"
	userDto "cruisevoyager/internal/domains/user/model/dto"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"
	"cruisevoyager/shared/validator"
	"cruisevoyager/transport/http/middleware"
	"cruisevoyager/transport/http/response"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Auth
	sessions *scs.SessionManager
	auth     middleware.Auth
	otel     otel.Otel
}

func New(service service.Auth, sessions *scs.SessionManager, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		auth:     auth,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
		r.Post("/forgot-password", handler.ForgotPassword)
		r.Post("/reset-password", handler.ResetPassword)
		r.Get("/verify-email", handler.VerifyEmail)

		r.Group(func(r chi.Router) {
			r.Use(handler.auth.RequireUser)
			r.Get("/user", handler.GetUser)
			r.Put("/user/profile", handler.UpdateProfile)
			r.Post("/user/change-password", handler.ChangePassword)
		})
	})
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user and open an authenticated session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[userDto.UserResponse] "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	if err := handler.openSession(r, res.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles user login
// @Summary Login a user
// @Description Login a user with the provided credentials and open an authenticated session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[userDto.UserResponse] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	if err := handler.openSession(r, res.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout handles user logout
// @Summary Logout the current user
// @Description Destroy the current session.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "User logged out successfully"
// @Failure 500 {object} response.Error
// @Router /api/auth/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.sessions.Destroy(r.Context()); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to destroy session")

		response.WithError(w, failure.InternalError(err))

		return
	}

	scope.AddEvent("User logged out successfully")

	response.WithMessage(w, http.StatusOK, "User logged out successfully")
}

// GetUser returns the currently authenticated user
// @Summary Get the current user
// @Description Retrieve the profile of the currently authenticated user.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[userDto.UserResponse] "Current user"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/user [get]
func (handler *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUser")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile updates the current user's profile
// @Summary Update the current user's profile
// @Description Update name and contact details of the currently authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body userDto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Data[userDto.UserResponse] "Profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/user/profile [put]
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := userDto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateProfile(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword changes the current user's password
// @Summary Change the current user's password
// @Description Verify the current password and replace it with a new one.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body userDto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/user/change-password [post]
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req := userDto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

// ForgotPassword starts the password reset flow
// @Summary Request a password reset
// @Description Send a password reset link to the given email if an account exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} response.Message "Reset instructions sent"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/forgot-password [post]
func (handler *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ForgotPassword")
	defer scope.End()

	req := dto.ForgotPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ForgotPassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start password reset")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password reset requested")

	response.WithMessage(w, http.StatusOK, "If the email exists, reset instructions have been sent")
}

// ResetPassword completes the password reset flow
// @Summary Reset a password
// @Description Replace the password of the account identified by a valid reset token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} response.Message "Password reset successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/reset-password [post]
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	req := dto.ResetPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ResetPassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password reset successfully")

	response.WithMessage(w, http.StatusOK, "Password reset successfully")
}

// VerifyEmail confirms a user's email address
// @Summary Verify an email address
// @Description Mark the account linked to a valid verification token as verified.
// @Tags Auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} response.Message "Email verified successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/verify-email [get]
func (handler *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyEmail")
	defer scope.End()

	token := r.URL.Query().Get("token")
	if token == constant.Empty {
		err := failure.BadRequestFromString("Verification token is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.VerifyEmail(ctx, token); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify email")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Email verified successfully")

	response.WithMessage(w, http.StatusOK, "Email verified successfully")
}

// openSession rotates the session token and binds it to the user. Rotation on
// privilege change prevents session fixation.
func (handler *Handler) openSession(r *http.Request, userID string) error {
	if err := handler.sessions.RenewToken(r.Context()); err != nil {
		return failure.InternalError(err) // nolint:wrapcheck
	}

	handler.sessions.Put(r.Context(), constant.SessionKeyUserID, userID)

	return nil
}
