package blogservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
)

const (
	DefaultAuthor = "unknown author"
	DefaultURL    = "unknown url"
)

type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	// UserID is the owner's id; nil when the blog was created without one.
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogView is the public projection of a Blog. The owner reference is never exposed.
type BlogView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// BlogRequest is the write input for both create and update. Nil fields are
// filled with defaults; UserID is only read on create.
type BlogRequest struct {
	Title  string  `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
	UserID *string `json:"userId"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m      *BlogModel
	mb     common.MessageProducer
	logger *slog.Logger
}
