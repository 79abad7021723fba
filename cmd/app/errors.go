package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := app.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.writeErrorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) unknownEndpointResponse(w http.ResponseWriter, r *http.Request) {
	app.notFoundErrorResponse(w, r, "unknown endpoint")
}

func (app *application) failedValidationErrorResponse(w http.ResponseWriter, r *http.Request, err common.ValidationError) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Message())
}

func (app *application) invalidCredentialsErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "invalid username or password")
}

func (app *application) invalidAuthenticationTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "token invalid")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// blogErrorResponse maps errors returned by the blog and user services to responses.
func (app *application) blogErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr common.ValidationError

	switch {
	case errors.Is(err, common.ErrMalformedID):
		app.badRequestErrorResponse(w, r, err)
	case errors.Is(err, common.ErrRecordNotFound):
		app.notFoundErrorResponse(w, r, "blog not found")
	case errors.Is(err, common.ErrUserNotFound):
		app.badRequestErrorResponse(w, r, err)
	case errors.Is(err, userservice.ErrInvalidToken):
		app.invalidAuthenticationTokenResponse(w, r)
	case errors.As(err, &validationErr):
		app.failedValidationErrorResponse(w, r, validationErr)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
