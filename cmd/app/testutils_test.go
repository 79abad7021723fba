package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type mockBlogService struct {
	mock.Mock
}

func (m *mockBlogService) ListAll(ctx context.Context) ([]blogservice.Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]blogservice.Blog)
	return blogs, args.Error(1)
}

func (m *mockBlogService) GetBlogByID(ctx context.Context, id string) (*blogservice.Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*blogservice.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogService) CreateBlog(ctx context.Context, req *blogservice.BlogRequest) (*blogservice.Blog, error) {
	args := m.Called(ctx, req)
	blog, _ := args.Get(0).(*blogservice.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogService) UpdateBlog(ctx context.Context, id string, req *blogservice.BlogRequest) (*blogservice.Blog, error) {
	args := m.Called(ctx, id, req)
	blog, _ := args.Get(0).(*blogservice.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogService) IncrementLikes(ctx context.Context, id string) (*blogservice.Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*blogservice.Blog)
	return blog, args.Error(1)
}

func (m *mockBlogService) DeleteBlog(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, req *userservice.CreateUserRequest) (*userservice.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*userservice.User)
	return user, args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]userservice.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]userservice.User)
	return users, args.Error(1)
}

func (m *mockUserService) LoginUser(ctx context.Context, req *userservice.LoginRequest) (*userservice.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*userservice.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockUserService) GetUserByToken(ctx context.Context, token string) (*userservice.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*userservice.User)
	return user, args.Error(1)
}

// newMockApplication returns an application in test mode backed by mocked services.
func newMockApplication(t *testing.T) (*application, *mockBlogService, *mockUserService) {
	blogs := new(mockBlogService)
	users := new(mockUserService)

	t.Cleanup(func() {
		blogs.AssertExpectations(t)
		users.AssertExpectations(t)
	})

	app := &application{
		config:      &Config{Port: "3003", Environment: "test"},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		blogService: blogs,
		userService: users,
		metrics:     common.NewHTTPMetrics(),
	}

	return app, blogs, users
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

// do sends payload as JSON and returns status, headers and raw body.
func (ts *testServer) do(t *testing.T, method, path string, payload any, token *string) (int, http.Header, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

func decode[T any](t *testing.T, body []byte) T {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("could not decode %q: %v", body, err)
	}

	return v
}

func strptr(s string) *string {
	return &s
}

func intptr(i int) *int {
	return &i
}
