package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userreg/internal/common"
	"github.com/dmitrijs2005/userreg/internal/dbx"
	"github.com/dmitrijs2005/userreg/internal/models"
)

// SQLiteRepository implements Repository on a SQLite handle.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository binds a repository to db, which may be a pool, a
// connection or a transaction.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts user as a new row. It does not check for duplicates.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (username, email, password)
		 VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, user.UserName, user.Email, user.Password)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// GetByUserName returns the first row whose username equals userName exactly,
// or common.ErrorNotFound.
func (r *SQLiteRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT username, email, password FROM users
		 WHERE username = ?
		 LIMIT 1`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&user.UserName, &user.Email, &user.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// List returns all rows in rowid (insertion) order.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username, email, password FROM users ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserName, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return result, nil
}
