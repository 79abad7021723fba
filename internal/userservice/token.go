package userservice

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base32"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/sushihentaime/bloglist/internal/common"
)

func newTokenModel(db *sql.DB) *TokenModel {
	return &TokenModel{db: db}
}

func hashToken(token string) []byte {
	hash := sha256.Sum256([]byte(token))
	return hash[:]
}

func newToken(userID string, ttl time.Duration) (*Token, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return nil, err
	}

	token := &Token{
		Plain:  base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes),
		UserID: userID,
		Expiry: time.Now().Add(ttl),
	}

	token.Hash = hashToken(token.Plain)

	return token, nil
}

func (m *TokenModel) insert(ctx context.Context, token *Token) error {
	query := `
		INSERT INTO tokens (hash, user_id, expiry)
		VALUES ($1, $2, $3)`

	_, err := m.db.ExecContext(ctx, query, token.Hash, token.UserID, token.Expiry)
	return err
}

func (m *TokenModel) create(ctx context.Context, userID string, ttl time.Duration) (*Token, error) {
	token, err := newToken(userID, ttl)
	if err != nil {
		return nil, err
	}

	if err := m.insert(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// getUser resolves the owner of an unexpired token.
func (m *TokenModel) getUser(ctx context.Context, hash []byte) (*User, error) {
	query := `
		SELECT u.id, u.username, u.name, u.adult, u.blogs, u.created_at
		FROM users u
		INNER JOIN tokens t ON u.id = t.user_id
		WHERE t.hash = $1 AND t.expiry > $2`

	var u User

	err := m.db.QueryRowContext(ctx, query, hash, time.Now()).Scan(&u.ID, &u.Username, &u.Name, &u.Adult, pq.Array(&u.Blogs), &u.CreatedAt)
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

func (m *TokenModel) deleteExpired(ctx context.Context, userID string) error {
	query := `
		DELETE FROM tokens
		WHERE user_id = $1 AND expiry <= $2`

	_, err := m.db.ExecContext(ctx, query, userID, time.Now())
	return err
}
