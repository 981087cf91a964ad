package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/striderapp/tokenkeeper/internal/common"
	"github.com/striderapp/tokenkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func recordRows(rec *models.RefreshTokenRecord) *sqlmock.Rows {
	// Nullable columns go in as plain values or nil; typed pointers do
	// not survive the driver.Value round trip.
	var replacedBy, revokedAt any
	if rec.ReplacedByJTI != nil {
		replacedBy = *rec.ReplacedByJTI
	}
	if rec.RevokedAt != nil {
		revokedAt = *rec.RevokedAt
	}
	return sqlmock.NewRows([]string{
		"id", "user_id", "token_digest", "family_id", "jti", "replaced_by_jti",
		"revoked_at", "revocation_reason", "expires_at", "created_at",
	}).AddRow(rec.ID, rec.UserID, rec.TokenDigest, rec.FamilyID, rec.JTI,
		replacedBy, revokedAt, string(rec.RevocationReason), rec.ExpiresAt, rec.CreatedAt)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\b.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7,\s*\$8\)\s*$`

	rec := &models.RefreshTokenRecord{
		ID:               "id1",
		UserID:           "u1",
		TokenDigest:      "digest1",
		FamilyID:         "f1",
		JTI:              "jti1",
		RevocationReason: models.RevocationReasonNone,
		ExpiresAt:        time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:        time.Now(),
	}

	mock.ExpectExec(q).
		WithArgs(rec.ID, rec.UserID, rec.TokenDigest, rec.FamilyID, rec.JTI,
			string(rec.RevocationReason), rec.ExpiresAt, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\b`

	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.RefreshTokenRecord{})
	if err == nil || !regexp.MustCompile(`error performing sql request: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByDigest_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+refresh_tokens\s+WHERE\s+token_digest\s*=\s*\$1\s*$`

	rec := &models.RefreshTokenRecord{
		ID: "id1", UserID: "u1", TokenDigest: "digest1", FamilyID: "f1", JTI: "jti1",
		RevocationReason: models.RevocationReasonNone,
		ExpiresAt:        time.Now().Add(time.Hour), CreatedAt: time.Now(),
	}

	mock.ExpectQuery(q).WithArgs("digest1").WillReturnRows(recordRows(rec))

	got, err := repo.FindByDigest(context.Background(), "digest1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "id1" || got.FamilyID != "f1" || got.IsRevoked() {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestFindByDigest_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+refresh_tokens\s+WHERE\s+token_digest\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByDigest(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByDigestForUpdate_LocksRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+refresh_tokens\s+WHERE\s+token_digest\s*=\s*\$1\s+FOR\s+UPDATE\s*$`

	revoked := time.Now().Add(-time.Minute)
	replacedBy := "jti2"
	rec := &models.RefreshTokenRecord{
		ID: "id1", UserID: "u1", TokenDigest: "digest1", FamilyID: "f1", JTI: "jti1",
		ReplacedByJTI: &replacedBy, RevokedAt: &revoked,
		RevocationReason: models.RevocationReasonRotated,
		ExpiresAt:        time.Now().Add(time.Hour), CreatedAt: time.Now(),
	}

	mock.ExpectQuery(q).WithArgs("digest1").WillReturnRows(recordRows(rec))

	got, err := repo.FindByDigestForUpdate(context.Background(), "digest1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsRevoked() || got.RevocationReason != models.RevocationReasonRotated {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.ReplacedByJTI == nil || *got.ReplacedByJTI != "jti2" {
		t.Fatalf("unexpected successor: %+v", got.ReplacedByJTI)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkRotated_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\s+SET\s+revoked_at\s*=\s*\$2,\s*revocation_reason\s*=\s*\$3,\s*replaced_by_jti\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s*$`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("id1", now, string(models.RevocationReasonRotated), "jti2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkRotated(context.Background(), "id1", "jti2", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkRotated_AlreadyRotated(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\s+SET\s+revoked_at\b`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("id1", now, string(models.RevocationReasonRotated), "jti2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRotated(context.Background(), "id1", "jti2", now)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound for zero rows, got %v", err)
	}
}

func TestRevokeFamily_SingleStatement(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\s+SET\s+revoked_at\s*=\s*\$2,\s*revocation_reason\s*=\s*\$3\s+WHERE\s+family_id\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s*$`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("f1", now, string(models.RevocationReasonReuseDetected)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.RevokeFamily(context.Background(), "f1", models.RevocationReasonReuseDetected, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRevokeFamily_NoActiveRowsIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\s+SET\s+revoked_at\b.*family_id`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("f1", now, string(models.RevocationReasonReuseDetected)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.RevokeFamily(context.Background(), "f1", models.RevocationReasonReuseDetected, now); err != nil {
		t.Fatalf("revoking a fully revoked family must not error, got %v", err)
	}
}

func TestRevokeAllForUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\s+SET\s+revoked_at\s*=\s*\$2,\s*revocation_reason\s*=\s*\$3\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s*$`

	now := time.Now()
	mock.ExpectExec(q).
		WithArgs("u1", now, string(models.RevocationReasonUserRevoked)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.RevokeAllForUser(context.Background(), "u1", models.RevocationReasonUserRevoked, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCountActiveForUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+count\(\*\)\s+FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s+AND\s+expires_at\s*>\s*\$2\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("u1", now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveForUser(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("want 2 active records, got %d", count)
	}
}

func TestRevoke_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\b`

	now := time.Now()
	mock.ExpectExec(q).WillReturnError(errors.New("db err"))

	err := repo.Revoke(context.Background(), "id1", models.RevocationReasonLogout, now)
	if err == nil || !regexp.MustCompile(`error performing sql request: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
