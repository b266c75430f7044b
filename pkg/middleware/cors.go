package middleware

import "net/http"

// defaultOrigins are the local development hosts the SPA runs on.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// CORS returns middleware allowing the SPA origins plus an optional deployed
// frontend URL. Credentialed requests require echoing the exact origin, so
// the allow list is matched per request rather than using a wildcard.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(defaultOrigins)+1)
	for _, o := range defaultOrigins {
		allowed[o] = struct{}{}
	}
	if frontendURL != "" {
		allowed[frontendURL] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
