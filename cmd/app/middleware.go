package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// maxLoggedBody is how much of a request body ends up in the log.
const maxLoggedBody = 1024

// logRequest logs method, path and body of every request. In the test
// environment it is not installed at all.
func (app *application) logRequest(next http.Handler) http.Handler {
	if app.config.Environment == "test" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			var err error
			body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				var maxBytesError *http.MaxBytesError
				if errors.As(err, &maxBytesError) {
					err = fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
				}
				app.badRequestErrorResponse(w, r, err)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		app.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("body", truncate(redactBody(body), maxLoggedBody)))

		next.ServeHTTP(w, r)
	})
}

// redactBody masks the password of JSON object bodies.
func redactBody(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return string(body)
	}

	if _, ok := fields["password"]; !ok {
		return string(body)
	}
	fields["password"] = "***"

	masked, err := json.Marshal(fields)
	if err != nil {
		return ""
	}

	return string(masked)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "...(truncated)"
}

// extractToken stores the bearer token of the Authorization header in the
// request context. It never rejects a request.
func (app *application) extractToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		auth := r.Header.Get("Authorization")
		if len(auth) >= 7 && strings.EqualFold(auth[:7], "bearer ") {
			r = app.contextSetToken(r, auth[7:])
		}

		next.ServeHTTP(w, r)
	})
}

// routeLabel labels a request by the route it matches, with parameter values
// replaced by their names. Requests no route matches all share "unknown".
func routeLabel(router *httprouter.Router) func(r *http.Request) string {
	return func(r *http.Request) string {
		handle, ps, _ := router.Lookup(r.Method, r.URL.Path)
		if handle == nil {
			return "unknown"
		}

		// A static segment can equal a parameter value, so each candidate
		// position is confirmed by looking the path up again with a marker there.
		const marker = "\x00"
		segments := strings.Split(r.URL.Path, "/")
		for i, p := 0, 0; i < len(segments) && p < len(ps); i++ {
			if segments[i] != ps[p].Value {
				continue
			}

			seg := segments[i]
			segments[i] = marker
			if h, sub, _ := router.Lookup(r.Method, strings.Join(segments, "/")); h != nil && sub.ByName(ps[p].Key) == marker {
				segments[i] = ":" + ps[p].Key
				p++
				continue
			}
			segments[i] = seg
		}

		return strings.Join(segments, "/")
	}
}
