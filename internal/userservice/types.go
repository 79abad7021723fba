package userservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
)

const (
	LoginTokenTime time.Duration = 24 * time.Hour

	bcryptCost = 12
)

type UserService struct {
	m      *UserModel
	tm     *TokenModel
	mb     common.MessageProducer
	logger *slog.Logger
}

type UserModel struct {
	db *sql.DB
}

type TokenModel struct {
	db *sql.DB
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  Password  `json:"-"`
	Adult     bool      `json:"adult"`
	Blogs     []string  `json:"blogs"`
	CreatedAt time.Time `json:"-"`
}

type Password struct {
	Plain string
	hash  []byte
}

type Token struct {
	Plain  string    `json:"token"`
	Hash   []byte    `json:"-"`
	UserID string    `json:"-"`
	Expiry time.Time `json:"expiry"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	// Adult defaults to true when omitted.
	Adult *bool `json:"adult"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is what a successful login hands back to the client.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
