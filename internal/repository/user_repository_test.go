package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/kanban-api/internal/models"
)

// openMockDB wires a gorm session over a sqlmock connection so SQL emitted by
// the repositories can be asserted without a live database.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password", "display_name", "profile_picture", "is_admin", "date_created"}).
		AddRow(int64(7341690684867805184), "alice", "$argon2id$...", "Alice", "/assets/avatars/7341690684867805184.png", false, int64(1704067200))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(rows)

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, uint64(7341690684867805184), user.ID)
	require.Equal(t, "alice", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := repo.FindByUsername("nobody")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Delete_RemovesAssignmentsInSameTransaction(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "user_task_assignments" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Delete_RollsBackOnError(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "user_task_assignments" WHERE user_id = \$1`).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Delete(42)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The model maps onto the table names the repositories query against.
func TestUserModel_TableName(t *testing.T) {
	db, _ := openMockDB(t)

	stmt := &gorm.Statement{DB: db}
	require.NoError(t, stmt.Parse(&models.User{}))
	require.Equal(t, "users", stmt.Schema.Table)
}
