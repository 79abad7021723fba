package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrAuthenticationFailure = errors.New("invalid username or password")
	ErrInvalidToken          = errors.New("token invalid")
)

// NewUserService builds the user service. A nil mb disables user events.
func NewUserService(db *sql.DB, mb common.MessageProducer, logger *slog.Logger) *UserService {
	return &UserService{
		m:      newUserModel(db),
		tm:     newTokenModel(db),
		mb:     mb,
		logger: logger,
	}
}

// CreateUser registers a new user and publishes a user.created event.
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, req.Username)
	validateName(v, req.Name)
	validatePassword(v, req.Password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: req.Username,
		Name:     req.Name,
		Adult:    true,
	}
	if req.Adult != nil {
		u.Adult = *req.Adult
	}

	if err := u.Password.set(req.Password); err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, &u)

	return &u, nil
}

// ListUsers returns every user together with the ids of the blogs they created.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}

// LoginUser checks the credentials and issues a bearer token valid for LoginTokenTime.
func (s *UserService) LoginUser(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.m.getByUsername(ctx, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.matches(req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailure
	}

	if err := s.tm.deleteExpired(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := s.tm.create(ctx, user.ID, LoginTokenTime)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token.Plain,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// GetUserByToken resolves the user behind a bearer token.
func (s *UserService) GetUserByToken(ctx context.Context, token string) (*User, error) {
	v := common.NewValidator()
	validateToken(v, token)
	if !v.Valid() {
		return nil, ErrInvalidToken
	}

	user, err := s.tm.getUser(ctx, hashToken(token))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, ErrInvalidToken
		default:
			return nil, err
		}
	}

	return user, nil
}

func (s *UserService) publishCreated(ctx context.Context, u *User) {
	if s.mb == nil {
		return
	}

	data := struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}

	msg, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to encode user event", slog.String("error", err.Error()))
		return
	}

	if err := s.mb.Publish(ctx, msg, common.UserCreatedKey, common.UserExchange); err != nil {
		s.logger.Error("failed to publish user event", slog.String("id", u.ID), slog.String("error", err.Error()))
	}
}
