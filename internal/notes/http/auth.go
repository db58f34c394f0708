package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type AuthHandler struct {
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	SecureCookies  bool
	SessionTTL     time.Duration
}

// HandleSignup creates an account and signs it in.
//
//	@Summary		Sign up
//	@Description	Creates a user and sets the session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.SignupRequest	true	"New account"
//	@Success		201		{object}	notesdk.UserResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"Missing fields, bad email, short password or taken username/email"
//	@Failure		429		{object}	notesdk.MessageResponse
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req notesdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	sess, err := h.AuthService.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, sess.Token, h.SessionTTL, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusCreated, notesdk.UserResponse{
		Success: true,
		User:    toUser(sess.User),
		Message: "User created successfully",
	})
}

// HandleLogin signs in with email and password.
//
//	@Summary		Log in
//	@Description	Checks the credentials and sets the session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	notesdk.UserResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"Invalid credentials"
//	@Failure		429		{object}	notesdk.MessageResponse
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req notesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeServiceError(w, r, service.ErrMissingFields)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, sess.Token, h.SessionTTL, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, notesdk.UserResponse{
		Success: true,
		User:    toUser(sess.User),
		Message: "Logged in successfully",
	})
}

// HandleLogout clears the session cookie.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	notesdk.MessageResponse
//	@Router		/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, notesdk.MessageResponse{Message: "Logged out successfully"})
}

// HandleAuthCheck returns the signed-in user.
//
//	@Summary	Current user
//	@Tags		Auth
//	@Security	SessionCookie
//	@Produce	json
//	@Success	200	{object}	notesdk.UserResponse
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Router		/api/auth/auth-check [get].
func (h *AuthHandler) HandleAuthCheck(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.UserResponse{Success: true, User: toUser(user)})
}
