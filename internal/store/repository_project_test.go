package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/models"
)

func newTestProjectRepo(t *testing.T, classifier ErrorClassificator) (*projectRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewProjectRepository(&DB{DB: db, logger: l, errorClassificator: classifier}, l).(*projectRepository)
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows(projectColumns)
}

// ── ListProjects ──────────────────────────────────────────────────────────────

func TestProjectRepository_ListProjects(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("SELECT (.+) FROM projects ORDER BY inserted_at DESC").
		WillReturnRows(projectRows().
			AddRow("b", "B", "", "bob", false, nil, "", "2024-01-02T00:00:00Z", "").
			AddRow("a", "A", "desc", "alice", true, "img", "desc", "2024-01-01T00:00:00Z", ""))

	projects, err := repo.ListProjects(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "b", projects[0].ID)
	assert.False(t, *projects[0].Public)
	assert.Nil(t, projects[0].PreviewImage)
	assert.Equal(t, "img", *projects[1].PreviewImage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListProjects_PublicOnly(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("WHERE public = \\$1").
		WithArgs(true).
		WillReturnRows(projectRows())

	projects, err := repo.ListProjects(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestProjectRepository_ListProjects_QueryError(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListProjects(context.Background(), false)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestProjectRepository_ListProjects_ScanError(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a")) // wrong shape

	_, err := repo.ListProjects(context.Background(), false)
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── GetProject ────────────────────────────────────────────────────────────────

func TestProjectRepository_GetProject(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("SELECT (.+) FROM projects WHERE id = \\$1").
		WithArgs("a").
		WillReturnRows(projectRows().AddRow("a", "A", "", "", true, nil, "", "2024-01-01T00:00:00Z", ""))

	p, err := repo.GetProject(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Title)
	assert.True(t, p.IsPublic())
}

func TestProjectRepository_GetProject_NotFound(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("SELECT").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

// ── CreateProject ─────────────────────────────────────────────────────────────

func TestProjectRepository_CreateProject(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)
	in := models.Project{ID: "a", Title: "Demo", Desc: "x", Public: models.Bool(true), PreviewText: "x", CreatedAt: "2024-01-01T00:00:00Z"}

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs("a", "Demo", "x", "", true, nil, "x", "2024-01-01T00:00:00Z", "").
		WillReturnRows(projectRows().AddRow("a", "Demo", "x", "", true, nil, "x", "2024-01-01T00:00:00Z", ""))

	created, err := repo.CreateProject(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_CreateProject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
		wantMsg string
	}{
		{name: "duplicate id", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrProjectAlreadyExists},
		{name: "value too long", dbErr: pgError(pgerrcode.StringDataRightTruncationDataException), wantErr: ErrExecutingStatement},
		{name: "unexpected", dbErr: errors.New("network"), wantMsg: "unexpected DB error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProjectRepo(t, nil)
			mock.ExpectQuery("INSERT INTO projects").WillReturnError(tt.dbErr)

			_, err := repo.CreateProject(context.Background(), models.Project{ID: "a"})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

// ── UpdateProject ─────────────────────────────────────────────────────────────

func TestProjectRepository_UpdateProject(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("UPDATE projects SET").
		WillReturnRows(projectRows().AddRow("a", "New", "", "", false, nil, "", "2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z"))

	updated, err := repo.UpdateProject(context.Background(), models.Project{ID: "a", Title: "New", Public: models.Bool(false)})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "2024-02-01T00:00:00Z", updated.UpdatedAt)
}

func TestProjectRepository_UpdateProject_NotFound(t *testing.T) {
	repo, mock := newTestProjectRepo(t, nil)

	mock.ExpectQuery("UPDATE projects SET").WillReturnRows(projectRows())

	_, err := repo.UpdateProject(context.Background(), models.Project{ID: "missing"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

// ── DeleteProject ─────────────────────────────────────────────────────────────

func TestProjectRepository_DeleteProject(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: ErrProjectNotFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("no driver support")), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProjectRepo(t, nil)

			exp := mock.ExpectExec("DELETE FROM projects WHERE id = \\$1").WithArgs("a")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteProject(context.Background(), "a")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── retries ───────────────────────────────────────────────────────────────────

func TestProjectRepository_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestProjectRepo(t, NewPostgresErrorClassifier())

	mock.ExpectQuery("SELECT").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT").WillReturnRows(projectRows().AddRow("a", "A", "", "", true, nil, "", "", ""))

	p, err := repo.GetProject(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock := newTestProjectRepo(t, NewPostgresErrorClassifier())

	mock.ExpectQuery("INSERT INTO projects").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateProject(context.Background(), models.Project{ID: "a"})
	assert.ErrorIs(t, err, ErrProjectAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

// ── classifier ────────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
}
