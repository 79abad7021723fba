package main

import (
	"context"
	"net/http"
)

type contextKey string

const tokenContextKey = contextKey("token")

func (app *application) contextSetToken(r *http.Request, token string) *http.Request {
	ctx := context.WithValue(r.Context(), tokenContextKey, token)
	return r.WithContext(ctx)
}

// contextGetToken returns the bearer token of the request, or "" when none was sent.
func (app *application) contextGetToken(r *http.Request) string {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}
