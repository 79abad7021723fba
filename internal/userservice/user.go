package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sushihentaime/bloglist/internal/common"
)

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, name, password_hash, adult)
		VALUES ($1, $2, $3, $4)
		RETURNING id, blogs, created_at`

	args := []any{
		u.Username,
		u.Name,
		u.Password.hash,
		u.Adult,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, pq.Array(&u.Blogs), &u.CreatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "users_username_key"):
			return common.ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, username, name, adult, blogs, created_at
		FROM users
		ORDER BY created_at, username`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Adult, pq.Array(&u.Blogs), &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (m *UserModel) getByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, password_hash, adult, blogs, created_at
		FROM users
		WHERE username = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Password.hash, &u.Adult, pq.Array(&u.Blogs), &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}
