package repositories

import (
	"context"
	"database/sql"
	"testing"

	"jobboard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestUserCreateDuplicateEmailBecomesConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})

	repo := UserRepository{DB: db}
	_, err = repo.Create(context.Background(), domain.User{Email: "a@b.c", Name: "A", Role: "viewer"})
	if !domain.IsConflict(err) {
		t.Fatalf("duplicate email should surface as conflict, got %v", err)
	}
}

func TestUserCreateBindsOnchainStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			"a@b.c", nil, "A", "viewer", "local",
			false, "", "", "", "[]",
			false, "Pending", true,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := UserRepository{DB: db}
	_, err = repo.Create(context.Background(), domain.User{
		Email: "a@b.c", Name: "A", Role: "viewer", AuthProvider: "local",
		OnchainStatus: domain.VerificationPending, JobSeeker: true,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserCreateDefaultsEmptyOnchainStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			"a@b.c", nil, "A", "viewer", "local",
			false, "", "", "", "[]",
			false, "Not Verified", false,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := UserRepository{DB: db}
	_, err = repo.Create(context.Background(), domain.User{
		Email: "a@b.c", Name: "A", Role: "viewer", AuthProvider: "local",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \?`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := UserRepository{DB: db}
	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSetOnchainDuplicateWalletBecomesConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE users`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})

	repo := UserRepository{DB: db}
	err = repo.SetOnchain(context.Background(), 1, "5Fwallet", domain.VerificationVerified, true)
	if !domain.IsConflict(err) {
		t.Fatalf("duplicate wallet should surface as conflict, got %v", err)
	}
}

func TestUpdateProfileEmptyPatchIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := UserRepository{DB: db}
	if err := repo.UpdateProfile(context.Background(), 1, UserPatch{}); err != nil {
		t.Fatalf("empty patch should not touch the database: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected statements: %v", err)
	}
}
