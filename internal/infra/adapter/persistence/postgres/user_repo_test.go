package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
	"github.com/Davidxap/ai-powered-blog-platform/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

func userRow(u *entity.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "created_at",
	}).AddRow(
		u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt,
	)
}

/* ──────────────────────────────── 1. Create ──────────────────────────────── */

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", "alice@example.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	repo := postgres.NewUserRepo(db)
	user := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$10$hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if user.ID != 7 {
		t.Fatalf("ID=%d want 7", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 2. GetByUsername ──────────────────────────────── */

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.User{
		ID: 3, Username: "bob", Email: "bob@example.com",
		PasswordHash: "$2a$10$hash", CreatedAt: time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs("bob").
		WillReturnRows(userRow(want))

	repo := postgres.NewUserRepo(db)
	got, err := repo.GetByUsername(context.Background(), "bob")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "password_hash", "created_at",
		})) // empty set, not an error

	repo := postgres.NewUserRepo(db)
	got, err := repo.GetByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetByUsername err=%v", err)
	}
	if got != nil {
		t.Fatalf("got=%+v want nil", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 3. ExistsByUsername ──────────────────────────────── */

func TestUserRepo_ExistsByUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := postgres.NewUserRepo(db)
	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	if err != nil || !exists {
		t.Fatalf("ExistsByUsername exists=%v err=%v", exists, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
