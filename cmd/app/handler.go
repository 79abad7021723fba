package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/stats"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type blogService interface {
	ListAll(ctx context.Context) ([]blogservice.Blog, error)
	GetBlogByID(ctx context.Context, id string) (*blogservice.Blog, error)
	CreateBlog(ctx context.Context, req *blogservice.BlogRequest) (*blogservice.Blog, error)
	UpdateBlog(ctx context.Context, id string, req *blogservice.BlogRequest) (*blogservice.Blog, error)
	IncrementLikes(ctx context.Context, id string) (*blogservice.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

type userService interface {
	CreateUser(ctx context.Context, req *userservice.CreateUserRequest) (*userservice.User, error)
	ListUsers(ctx context.Context) ([]userservice.User, error)
	LoginUser(ctx context.Context, req *userservice.LoginRequest) (*userservice.LoginResponse, error)
	GetUserByToken(ctx context.Context, token string) (*userservice.User, error)
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.ListAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogservice.FormatBlogs(blogs), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	blog, err := app.blogService.GetBlogByID(r.Context(), app.readIDParam(r))
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogservice.FormatBlog(*blog), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBlogHandler attaches the owner named by userId, or failing that the
// user behind the bearer token when one was sent.
func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.BlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	if token := app.contextGetToken(r); input.UserID == nil && token != "" {
		user, err := app.userService.GetUserByToken(r.Context(), token)
		if err != nil {
			app.blogErrorResponse(w, r, err)
			return
		}
		input.UserID = &user.ID
	}

	blog, err := app.blogService.CreateBlog(r.Context(), &input)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, blogservice.FormatBlog(*blog), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.BlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.UpdateBlog(r.Context(), app.readIDParam(r), &input)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogservice.FormatBlog(*blog), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) likeBlogHandler(w http.ResponseWriter, r *http.Request) {
	blog, err := app.blogService.IncrementLikes(r.Context(), app.readIDParam(r))
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogservice.FormatBlog(*blog), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	err := app.blogService.DeleteBlog(r.Context(), app.readIDParam(r))
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) statsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.ListAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, stats.Summarize(blogs), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var input userservice.CreateUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.CreateUser(r.Context(), &input)
	if err != nil {
		var validationErr common.ValidationError

		switch {
		case errors.Is(err, common.ErrDuplicateUsername):
			app.badRequestErrorResponse(w, r, err)
		case errors.As(err, &validationErr):
			app.failedValidationErrorResponse(w, r, validationErr)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, user, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.ListUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, users, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input userservice.LoginRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	resp, err := app.userService.LoginUser(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
