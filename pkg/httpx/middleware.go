package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Recover turns a handler panic into a logged 500. The panic value and stack
// go to the request logger only; clients get the generic message.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			slogx.FromContext(r.Context()).Error("panic recovered",
				"panic", fmt.Sprint(v),
				"stack", string(debug.Stack()),
			)
			WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
