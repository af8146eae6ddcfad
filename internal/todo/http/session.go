package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

// requireSession resolves the session cookie to a user. The token only
// proves which session the cookie names; the session and its user must
// still exist.
func (r *Router) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		log := slogx.FromContext(ctx)

		cookie, err := req.Cookie(todosdk.SessionCookie)
		if err != nil || cookie.Value == "" {
			writeUnauthorized(w)
			return
		}

		claims, err := r.verifier.Verify(cookie.Value)
		if err != nil {
			log.Debug("session token rejected", "err", err)
			writeUnauthorized(w)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			writeUnauthorized(w)
			return
		}

		sess, err := r.SessionService.GetSessionByID(ctx, claims.SID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeUnauthorized(w)
				return
			}
			writeError(w, req, err)
			return
		}
		if sess.UserID != userID {
			log.Warn("session owner mismatch", "session_id", sess.ID)
			writeUnauthorized(w)
			return
		}

		ok, err := r.UserService.HasUserID(ctx, sess.UserID)
		if err != nil {
			writeError(w, req, err)
			return
		}
		if !ok {
			writeUnauthorized(w)
			return
		}

		ctx = context.WithValue(ctx, ctxKeyUserID, sess.UserID)
		ctx = context.WithValue(ctx, ctxKeySessionID, sess.ID)
		ctx = slogx.With(ctx, "user_id", sess.UserID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
