package handler

import (
	"log"
	"net/http"

	"medical-directory/internal/model/requestresponse"
	"medical-directory/internal/ports"
	"medical-directory/internal/security"
	"medical-directory/internal/util"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	responder *util.Responder
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, responder *util.Responder) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService, responder}
}

// Register godoc
// @Summary Register a new user
// @Description Creates the account and returns its first token pair. Email and phone must be unique.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Registration data"
// @Success 201 {object} requestresponse.Envelope{data=requestresponse.AuthData}
// @Failure 400 {object} requestresponse.Envelope "Missing fields or invalid format"
// @Failure 409 {object} requestresponse.Envelope "Email or phone already taken"
// @Failure 500 {object} requestresponse.Envelope
// @Router /api/auth/register [post]
func (h *AuthenticationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	data, err := h.AuthenticationService.Register(r.Context(), &req)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, "user created", data)
}

// Login godoc
// @Summary Log in
// @Description Authenticates by email or phone and password and returns a new token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Credentials"
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.AuthData}
// @Failure 400 {object} requestresponse.Envelope "Incorrect credentials"
// @Failure 500 {object} requestresponse.Envelope
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	data, err := h.AuthenticationService.Login(r.Context(), &req)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "login succeeded", data)
}

// RefreshToken godoc
// @Summary Rotate tokens
// @Description Exchanges a refresh token for a new pair. The presented refresh token stops working.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.AuthData}
// @Failure 400 {object} requestresponse.Envelope "Refresh token invalid, expired or not found"
// @Failure 500 {object} requestresponse.Envelope
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	result, err := h.AuthenticationService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "tokens refreshed", requestresponse.AuthData{
		User:   result.User,
		Tokens: result.Tokens,
	})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the refresh token. Succeeds even when the token is unknown.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} requestresponse.Envelope
// @Failure 400 {object} requestresponse.Envelope "Refresh token missing"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}
	if req.RefreshToken == "" {
		h.responder.Fail(w, http.StatusBadRequest, "refresh token is required for logout")
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), req.RefreshToken); err != nil {
		log.Printf("[AuthHandler] logout: %v", err)
	}

	h.responder.Success(w, http.StatusOK, "logout succeeded", nil)
}

// Profile godoc
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.ProfileData}
// @Failure 400 {object} requestresponse.Envelope
// @Failure 401 {object} requestresponse.Envelope
// @Security ApiKeyAuth
// @Router /api/auth/profile [get]
func (h *AuthenticationHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", requestresponse.ProfileData{User: user})
}

// ChangePassword godoc
// @Summary Change password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Param body body requestresponse.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} requestresponse.Envelope
// @Failure 400 {object} requestresponse.Envelope
// @Failure 401 {object} requestresponse.Envelope
// @Failure 404 {object} requestresponse.Envelope
// @Security ApiKeyAuth
// @Router /api/auth/password [patch]
func (h *AuthenticationHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.AuthenticationService.ChangePassword(r.Context(), user.ID, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "password changed", nil)
}

// EmailAvailable godoc
// @Summary Check whether an email is free
// @Tags Authentication
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.EmailAvailabilityData}
// @Failure 400 {object} requestresponse.Envelope
// @Router /api/auth/email-available [get]
func (h *AuthenticationHandler) EmailAvailable(w http.ResponseWriter, r *http.Request) {
	data, err := h.AuthenticationService.CheckEmailAvailability(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", data)
}

// PhoneAvailable godoc
// @Summary Check whether a phone number is free
// @Tags Authentication
// @Produce json
// @Param phone query string true "Phone"
// @Success 200 {object} requestresponse.Envelope{data=requestresponse.PhoneAvailabilityData}
// @Failure 400 {object} requestresponse.Envelope
// @Router /api/auth/phone-available [get]
func (h *AuthenticationHandler) PhoneAvailable(w http.ResponseWriter, r *http.Request) {
	data, err := h.AuthenticationService.CheckPhoneAvailability(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", data)
}
