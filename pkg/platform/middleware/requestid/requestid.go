package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"defensoria/pkg/requestcontext"
)

// Header carries the request ID on responses and inbound requests.
const Header = "X-Request-ID"

// RequestID assigns each request an ID (honoring one supplied by an
// upstream proxy) and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		w.Header().Set(Header, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
