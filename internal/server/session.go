package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ziadkadry99/studydeck/internal/shell"
)

// SessionCookie names the cookie that ties a browser to its shell and
// completion set.
const SessionCookie = "studydeck_session"

const sessionMaxAge = 365 * 24 * 60 * 60

type sessionKey struct{}

// withSession resolves the session cookie, issuing a new id when it is
// missing or malformed.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
	})
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey{}).(string)
	return id
}

// session returns the shell for the request's session and the user id its
// completion set is stored under.
func (s *Server) session(r *http.Request) (*shell.Shell, string) {
	id := sessionID(r)
	return s.sessions.Get(id), id
}
