package blogservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/sushihentaime/bloglist/internal/common"
)

// NewBlogService wires the blog model to an optional event producer. A nil mb disables events.
func NewBlogService(db *sql.DB, mb common.MessageProducer, logger *slog.Logger) *BlogService {
	return &BlogService{m: newBlogModel(db), mb: mb, logger: logger}
}

// ListAll returns every stored blog in insertion order.
func (s *BlogService) ListAll(ctx context.Context) ([]Blog, error) {
	return s.m.getAll(ctx)
}

// GetBlogByID returns a blog by its ID.
func (s *BlogService) GetBlogByID(ctx context.Context, id string) (*Blog, error) {
	if !validID(id) {
		return nil, common.ErrMalformedID
	}

	return s.m.getByID(ctx, id)
}

// CreateBlog persists a new blog. When the request names an owner the blog id is
// appended to that user's blog list within the same transaction.
func (s *BlogService) CreateBlog(ctx context.Context, req *BlogRequest) (*Blog, error) {
	blog, err := normalize(req)
	if err != nil {
		return nil, err
	}
	blog.UserID = req.UserID

	if err := s.m.insert(ctx, &blog); err != nil {
		return nil, err
	}

	s.publish(ctx, &blog, common.BlogCreatedKey)

	return &blog, nil
}

// UpdateBlog replaces title, author, url and likes of an existing blog. Omitted
// fields are reset to their creation defaults.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, req *BlogRequest) (*Blog, error) {
	if !validID(id) {
		return nil, common.ErrMalformedID
	}

	// the owner cannot be changed through an update
	r := *req
	r.UserID = nil

	blog, err := normalize(&r)
	if err != nil {
		return nil, err
	}
	blog.ID = id

	if err := s.m.update(ctx, &blog); err != nil {
		return nil, err
	}

	s.publish(ctx, &blog, common.BlogUpdatedKey)

	return &blog, nil
}

// IncrementLikes adds exactly one like to the blog.
func (s *BlogService) IncrementLikes(ctx context.Context, id string) (*Blog, error) {
	if !validID(id) {
		return nil, common.ErrMalformedID
	}

	blog, err := s.m.incrementLikes(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, blog, common.BlogLikedKey)

	return blog, nil
}

// DeleteBlog deletes a blog and removes it from its owner's blog list.
func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrMalformedID
	}

	blog, err := s.m.delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, blog, common.BlogDeletedKey)

	return nil
}

type blogEvent struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	URL    string  `json:"url"`
	Likes  int     `json:"likes"`
	UserID *string `json:"user_id"`
}

// publish announces a committed write. Failures are logged only since the write already happened.
func (s *BlogService) publish(ctx context.Context, b *Blog, key common.BindingKey) {
	if s.mb == nil {
		return
	}

	msg, err := json.Marshal(blogEvent{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		UserID: b.UserID,
	})
	if err != nil {
		s.logger.Error("failed to encode blog event", slog.String("key", string(key)), slog.String("error", err.Error()))
		return
	}

	if err := s.mb.Publish(ctx, msg, key, common.BlogExchange); err != nil {
		s.logger.Error("failed to publish blog event", slog.String("key", string(key)), slog.String("id", b.ID), slog.String("error", err.Error()))
	}
}
