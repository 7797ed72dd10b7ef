package router

import (
	"net/http"

	"github.com/charmbracelet/log"

	"dress-diary/app/controller"
	"dress-diary/service"
	"dress-diary/session"
)

// authenticate resolves the bearer token of each request to the active user
func authenticate(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := auth.Authenticate(controller.BearerToken(r))
			if err != nil {
				log.Debugf("🔍 Rejected %s %s: %v", r.Method, r.URL.Path, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"` + err.Error() + `"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), sess)))
		})
	}
}
