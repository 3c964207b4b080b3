package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

// Recover turns a handler panic into a 500 so one bad request can't take the
// process down.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slogx.FromContext(r.Context()).Error("handler panic",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteError(w, http.StatusInternalServerError, "server", "internal error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
