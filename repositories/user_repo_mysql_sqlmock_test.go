package repositories

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Thammasok/user-api/models"
)

// helper: new GORM DB using a sqlmock connection with MySQL dialect.
// The repository is dialect-agnostic; MySQL gives the most predictable
// SQL text for expectations.
func newMySQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, sqlDB
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "created_at"})
	for _, u := range users {
		rows.AddRow(u.ID.String(), u.Name, u.Email, u.CreatedAt)
	}
	return rows
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (`id`,`name`,`email`,`created_at`) VALUES (?,?,?,?)")).
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u, err := repo.Create("Alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID) // BeforeCreate hook generated it
	assert.False(t, u.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll_NewestFirst(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)

	newer := models.User{ID: uuid.New(), Name: "B", Email: "b@x.co", CreatedAt: time.Now()}
	older := models.User{ID: uuid.New(), Name: "A", Email: "a@x.co", CreatedAt: time.Now().Add(-time.Hour)}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` ORDER BY created_at DESC")).
		WillReturnRows(userRows(newer, older))

	users, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "B", users[0].Name)
	assert.Equal(t, "A", users[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	u := models.User{ID: uuid.New(), Name: "Alice", Email: "a@x.co", CreatedAt: time.Now()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ? ORDER BY `users`.`id` LIMIT ?")).
		WithArgs(u.ID, sqlmock.AnyArg()).
		WillReturnRows(userRows(u))

	got, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Absent rows are (nil, nil), not an error.
func TestUserRepository_FindByID_Absent(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ? ORDER BY `users`.`id` LIMIT ?")).
		WithArgs(id, sqlmock.AnyArg()).
		WillReturnRows(userRows())

	got, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_Absent(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE email = ? ORDER BY `users`.`id` LIMIT ?")).
		WithArgs("ghost@x.co", sqlmock.AnyArg()).
		WillReturnRows(userRows())

	got, err := repo.FindByEmail("ghost@x.co")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Update runs read-merge-write inside one transaction, with the read
// locking the row so a concurrent update cannot interleave; provided
// fields override, absent fields keep their current value.
func TestUserRepository_Update_MergesInsideTransaction(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	current := models.User{ID: uuid.New(), Name: "Old", Email: "old@x.co", CreatedAt: time.Now()}
	newName := "New"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ? ORDER BY `users`.`id` LIMIT ? FOR UPDATE")).
		WithArgs(current.ID, sqlmock.AnyArg()).
		WillReturnRows(userRows(current))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET `email`=?,`name`=? WHERE id = ?")).
		WithArgs("old@x.co", "New", current.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Update(current.ID, &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "old@x.co", got.Email) // untouched field retained
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_Absent(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE id = ? ORDER BY `users`.`id` LIMIT ? FOR UPDATE")).
		WithArgs(id, sqlmock.AnyArg()).
		WillReturnRows(userRows())
	mock.ExpectCommit()

	got, err := repo.Update(id, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE id = ?")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(id)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NoRow(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE id = ?")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(id)
	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Count(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `users`")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.NoError(t, mock.ExpectationsWereMet())
}
