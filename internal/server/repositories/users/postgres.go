package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/striderapp/tokenkeeper/internal/common"
	"github.com/striderapp/tokenkeeper/internal/dbx"
	"github.com/striderapp/tokenkeeper/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the user row for the given id, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, created_at
		FROM users
		WHERE id = $1
	`
	user := &models.User{}
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&user.ID, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
