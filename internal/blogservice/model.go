package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/bloglist/internal/common"
)

const blogColumns = `id, title, author, url, likes, user_id, created_at`

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (*Blog, error) {
	var blog Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.UserID, &blog.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// storageError maps driver errors a client can cause to service errors.
func storageError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrRecordNotFound
	case common.NumericOutOfRange(err):
		return common.ValidationError{Errors: map[string]string{"likes": "likes too large"}}
	default:
		return err
	}
}

func (m *BlogModel) getAll(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at, id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) getByID(ctx context.Context, id string) (*Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, storageError(err)
	}

	return blog, nil
}

// insert stores the blog and appends its id to the owner's blog list in one transaction.
func (m *BlogModel) insert(ctx context.Context, b *Blog) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, query, b.Title, b.Author, b.URL, b.Likes, b.UserID).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyViolation(err, "blogs_user_id_fkey"):
			return common.ErrUserNotFound
		case common.NumericOutOfRange(err):
			return storageError(err)
		default:
			return fmt.Errorf("insert blog: %w", err)
		}
	}

	if b.UserID != nil {
		query = `
			UPDATE users
			SET blogs = array_append(blogs, $1::uuid)
			WHERE id = $2`

		res, err := tx.ExecContext(ctx, query, b.ID, *b.UserID)
		if err != nil {
			return fmt.Errorf("append blog to user: %w", err)
		}

		if err := expectOneRow(res); err != nil {
			return fmt.Errorf("append blog to user: %w", err)
		}
	}

	return tx.Commit()
}

// update replaces every mutable field. The owner is left untouched.
func (m *BlogModel) update(ctx context.Context, b *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4
		WHERE id = $5
		RETURNING user_id, created_at`

	err := m.db.QueryRowContext(ctx, query, b.Title, b.Author, b.URL, b.Likes, b.ID).Scan(&b.UserID, &b.CreatedAt)
	if err != nil {
		return storageError(err)
	}

	return nil
}

func (m *BlogModel) incrementLikes(ctx context.Context, id string) (*Blog, error) {
	query := `
		UPDATE blogs
		SET likes = likes + 1
		WHERE id = $1
		RETURNING ` + blogColumns

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, storageError(err)
	}

	return blog, nil
}

// delete removes the blog and drops its id from the owner's blog list in one transaction.
func (m *BlogModel) delete(ctx context.Context, id string) (*Blog, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		DELETE FROM blogs
		WHERE id = $1
		RETURNING ` + blogColumns

	blog, err := scanBlog(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, storageError(err)
	}

	if blog.UserID != nil {
		query = `
			UPDATE users
			SET blogs = array_remove(blogs, $1::uuid)
			WHERE id = $2`

		if _, err := tx.ExecContext(ctx, query, blog.ID, *blog.UserID); err != nil {
			return nil, fmt.Errorf("remove blog from user: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return blog, nil
}

func expectOneRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	}

	return nil
}
