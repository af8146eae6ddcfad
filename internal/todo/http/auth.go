package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

type AuthHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
	Signer         jwtx.Signer
	Issuer         string
	CookieSecure   bool
}

// HandleSignup registers a user.
//
//	@Summary		Sign up
//	@Description	Creates a user. Usernames are unique and must not contain whitespace.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.Credentials		true	"Username and password"
//	@Success		201		{object}	todosdk.MessageResponse	"User created successfully"
//	@Failure		400		{object}	todosdk.MessageResponse	"Missing or invalid credentials"
//	@Failure		409		{object}	todosdk.MessageResponse	"User already exists"
//	@Failure		429		{object}	todosdk.MessageResponse	"Too many requests"
//	@Router			/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req todosdk.Credentials
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	userID, err := h.UserService.CreateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user created", "user_id", userID)
	httpx.WriteMessage(w, http.StatusCreated, msgUserCreated)
}

// HandleLogin opens a session and sets the session cookie.
//
//	@Summary		Log in
//	@Description	Verifies the password and sets the sessionId cookie to a signed session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.Credentials		true	"Username and password"
//	@Success		201		{object}	todosdk.MessageResponse	"Login successful"
//	@Failure		400		{object}	todosdk.MessageResponse	"Missing credentials"
//	@Failure		401		{object}	todosdk.MessageResponse	"Invalid password"
//	@Failure		404		{object}	todosdk.MessageResponse	"User not found"
//	@Failure		429		{object}	todosdk.MessageResponse	"Too many requests"
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req todosdk.Credentials
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		writeError(w, r, domain.ErrEmptyCredentials)
		return
	}

	userID, err := h.UserService.GetIDByUsername(ctx, req.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ok, err := h.UserService.VerifyPassword(ctx, userID, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, msgInvalidPass)
		return
	}

	sid, err := h.SessionService.CreateSession(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ttl := h.SessionService.TTL
	token, err := h.Signer.Sign(jwtx.NewSessionClaims(sid, userID, h.Issuer, ttl, time.Now()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	cookie := h.cookie(token)
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(w, cookie)

	slogx.FromContext(ctx).Info("session opened", "user_id", userID, "session_id", sid)
	httpx.WriteMessage(w, http.StatusCreated, msgLoggedIn)
}

// HandleLogout deletes the current session and clears the cookie.
//
//	@Summary		Log out
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	todosdk.MessageResponse	"Logout successful"
//	@Failure		401	{object}	todosdk.MessageResponse	"Unauthorized"
//	@Router			/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.SessionService.DeleteSession(ctx, sessionIDFrom(ctx)); err != nil {
		writeError(w, r, err)
		return
	}

	cookie := h.cookie("")
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	httpx.WriteMessage(w, http.StatusOK, msgLoggedOut)
}

func (h *AuthHandler) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     todosdk.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
