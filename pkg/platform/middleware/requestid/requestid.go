// Package requestid tags every request with an identifier that flows through
// logs and the X-Request-ID response header.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"foresight/pkg/requestcontext"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

// maxInboundLength caps client-supplied ids so they cannot bloat logs.
const maxInboundLength = 128

// Middleware reuses a sane inbound X-Request-ID or generates a UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > maxInboundLength {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithRequestID(r.Context(), id)))
	})
}
