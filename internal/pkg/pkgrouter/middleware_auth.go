package pkgrouter

import (
	"crypto/subtle"
	"fmt"
	"net/http"
)

// BasicAuth guards endpoints with HTTP basic auth. Credential comparison is
// constant time on both the username and the password. A missing or wrong
// credential gets 401 with a WWW-Authenticate challenge for the given realm.
func BasicAuth(username, password, realm string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if ok {
				userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
				passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
				if userMatch && passMatch {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
			writeJSON(w, errorResponse{Message: "unauthorized"}, http.StatusUnauthorized)
		})
	}
}
