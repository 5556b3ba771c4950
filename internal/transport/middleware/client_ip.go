package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/wordmate-backend/pkg/ctxutil"
)

// ClientIP returns middleware that stores the caller's host (RemoteAddr
// without the port) in the context.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithClientIP(r.Context(), remoteHost(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientKey is the key requests are grouped by for rate limiting.
func clientKey(r *http.Request) string {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip
	}
	return remoteHost(r)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
