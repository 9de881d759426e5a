package middleware

import "net/http"

const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// CORS adds the allow headers to every response and echoes the frontend
// origin only when the request's Origin matches it exactly. Every OPTIONS
// request is answered directly with 204.
func CORS(frontendOrigin string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Add("Access-Control-Allow-Methods", corsAllowMethods)
			h.Add("Vary", "Origin")
			if origin := r.Header.Get("Origin"); origin != "" && origin == frontendOrigin {
				h.Set("Access-Control-Allow-Origin", frontendOrigin)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
