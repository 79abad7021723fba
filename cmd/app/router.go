package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.unknownEndpointResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)
	router.Handler(http.MethodGet, "/metrics", app.metrics.Handler())

	router.HandlerFunc(http.MethodGet, "/api/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/api/blogs", app.createBlogHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodPut, "/api/blogs/:id", app.updateBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/api/blogs/:id", app.deleteBlogHandler)
	router.HandlerFunc(http.MethodPut, "/api/blogs/:id/likes", app.likeBlogHandler)
	router.HandlerFunc(http.MethodGet, "/api/stats", app.statsHandler)

	router.HandlerFunc(http.MethodPost, "/api/users", app.createUserHandler)
	router.HandlerFunc(http.MethodGet, "/api/users", app.listUsersHandler)
	router.HandlerFunc(http.MethodPost, "/api/login", app.loginHandler)

	return app.recoverPanic(app.metrics.Middleware(routeLabel(router), app.logRequest(app.extractToken(router))))
}
