// Package services contains the application services of userreg.
// UserStore implements registration, authentication and listing of users
// on top of a single SQLite database handle.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/userreg/internal/common"
	"github.com/dmitrijs2005/userreg/internal/dbx"
	"github.com/dmitrijs2005/userreg/internal/logging"
	"github.com/dmitrijs2005/userreg/internal/migrations"
	"github.com/dmitrijs2005/userreg/internal/models"
	"github.com/dmitrijs2005/userreg/internal/repositories/users"
)

// UserStore owns the users table of one database.
//
// Every operation checks out a dedicated connection and returns it to the
// pool before returning, on success and on error alike.
type UserStore struct {
	db  *sql.DB
	log logging.Logger
}

// NewUserStore binds a UserStore to db. The caller keeps ownership of db.
func NewUserStore(db *sql.DB, log logging.Logger) *UserStore {
	return &UserStore{db: db, log: log.With("component", "userstore")}
}

// Initialize creates the users table if it does not exist yet.
// Repeated calls are no-ops.
func (s *UserStore) Initialize(ctx context.Context) error {
	if err := migrations.Run(ctx, s.db, s.log); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	s.log.Debug(ctx, "storage initialized")
	return nil
}

// Register stores a new user. It returns false, and changes nothing, when
// userName is already taken.
func (s *UserStore) Register(ctx context.Context, userName, email, password string) (bool, error) {
	created := false

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		return dbx.WithTx(ctx, conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := users.NewSQLiteRepository(tx)

			_, err := repo.GetByUserName(ctx, userName)
			if err == nil {
				return nil
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}

			if err := repo.Create(ctx, &models.User{UserName: userName, Email: email, Password: password}); err != nil {
				return err
			}
			created = true
			return nil
		})
	})
	if err != nil {
		return false, fmt.Errorf("register %q: %w", userName, err)
	}

	if created {
		s.log.Info(ctx, "user registered", "username", userName)
	} else {
		s.log.Info(ctx, "registration rejected, user exists", "username", userName)
	}
	return created, nil
}

// Authenticate reports whether userName exists and its stored password equals
// password byte for byte. Unknown users and wrong passwords both yield false.
func (s *UserStore) Authenticate(ctx context.Context, userName, password string) (bool, error) {
	var user *models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		user, err = users.NewSQLiteRepository(conn).GetByUserName(ctx, userName)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		s.log.Debug(ctx, "authentication failed", "username", userName)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("authenticate %q: %w", userName, err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) == 0 {
		s.log.Debug(ctx, "authentication failed", "username", userName)
		return false, nil
	}

	s.log.Debug(ctx, "authentication succeeded", "username", userName)
	return true, nil
}

// Users returns every stored record in storage order.
func (s *UserStore) Users(ctx context.Context) ([]models.User, error) {
	var list []models.User

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		list, err = users.NewSQLiteRepository(conn).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// ListAll writes one "Login: <username>, Email: <email>" line per stored user to w.
func (s *UserStore) ListAll(ctx context.Context, w io.Writer) error {
	list, err := s.Users(ctx)
	if err != nil {
		return err
	}

	for _, u := range list {
		if _, err := fmt.Fprintf(w, "Login: %s, Email: %s\n", u.UserName, u.Email); err != nil {
			return err
		}
	}
	return nil
}
