package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

const (
	corsRequestMethodHeader  = "Access-Control-Request-Method"
	corsRequestHeadersHeader = "Access-Control-Request-Headers"
)

var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

func corsOptions() []handlers.CORSOption {
	return []handlers.CORSOption{
		handlers.AllowedOriginValidator(func(string) bool { return true }),
		handlers.AllowedMethods(corsMethods),
		handlers.AllowCredentials(),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	}
}

// CORS allows every origin, method and header, with credentials. The calling
// origin is echoed back because browsers refuse "*" on credentialed requests.
// gorilla/handlers has no header wildcard, so preflights allow exactly the
// headers they ask for. An OPTIONS request without Access-Control-Request-Method
// is not a preflight and goes straight to next.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		base := handlers.CORS(corsOptions()...)(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions && r.Header.Get(corsRequestMethodHeader) == "" {
				next.ServeHTTP(w, r)
				return
			}

			requested := requestedHeaders(r)
			if r.Method != http.MethodOptions || len(requested) == 0 {
				base.ServeHTTP(w, r)
				return
			}

			opts := append(corsOptions(), handlers.AllowedHeaders(requested))
			handlers.CORS(opts...)(next).ServeHTTP(w, r)
		})
	}
}

func requestedHeaders(r *http.Request) []string {
	var headers []string
	for _, value := range r.Header.Values(corsRequestHeadersHeader) {
		for _, header := range strings.Split(value, ",") {
			if header = strings.TrimSpace(header); header != "" {
				headers = append(headers, header)
			}
		}
	}
	return headers
}
