package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userreg/internal/common"
	"github.com/dmitrijs2005/userreg/internal/models"
)

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLiteRepository(db), mock, db
}

const (
	insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password\)\s*VALUES\s*\(\?,\s*\?,\s*\?\)$`
	selectQ = `(?s)^SELECT\s+username,\s*email,\s*password\s+FROM\s+users\s+WHERE\s+username\s*=\s*\?\s+LIMIT\s+1$`
	listQ   = `(?s)^SELECT\s+username,\s*email,\s*password\s+FROM\s+users\s+ORDER\s+BY\s+rowid$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("alice", "alice@example.com", "secret").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.User{UserName: "alice", Email: "alice@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("alice", "a@x", "p").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.User{UserName: "alice", Email: "a@x", Password: "p"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUserName_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"username", "email", "password"}).
		AddRow("alice", "alice@example.com", "secret")
	mock.ExpectQuery(selectQ).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUserName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUserName error: %v", err)
	}
	if got.UserName != "alice" || got.Email != "alice@example.com" || got.Password != "secret" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUserName_NoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserName(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByUserName_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).
		WithArgs("alice").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByUserName(context.Background(), "alice")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"username", "email", "password"}).
		AddRow("a", "a@x", "1").
		AddRow("b", "b@x", "2").
		RowError(1, errors.New("row broke"))
	mock.ExpectQuery(listQ).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	if err == nil || !regexp.MustCompile(`failed to iterate user rows: .*row broke`).MatchString(err.Error()) {
		t.Fatalf("expected iterate error, got %v", err)
	}
}
