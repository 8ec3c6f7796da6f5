package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires gorm to a sqlmock connection so repository SQL paths can be
// driven without a live MySQL.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func conversationRows(id uint64, userA, userB string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "user_a", "user_b", "created_at", "updated_at"}).
		AddRow(id, userA, userB, now, now)
}

func TestConversationFindOrCreate_CreatesWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationRepository(db)

	mock.ExpectQuery("SELECT .* FROM .conversations.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_a", "user_b", "created_at", "updated_at"}))
	mock.ExpectExec("INSERT INTO .conversations.").
		WillReturnResult(sqlmock.NewResult(3, 1))

	conv, err := repo.FindOrCreate("bob", "alice")

	assert.NoError(t, err)
	assert.Equal(t, uint64(3), conv.ID)
	assert.Equal(t, "alice", conv.UserA)
	assert.Equal(t, "bob", conv.UserB)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationFindOrCreate_LostRaceRefetchesWinner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationRepository(db)

	// Not there yet, our insert loses to a concurrent first-contact send,
	// and the follow-up fetch must return the winner's row.
	mock.ExpectQuery("SELECT .* FROM .conversations.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_a", "user_b", "created_at", "updated_at"}))
	mock.ExpectExec("INSERT INTO .conversations.").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'alice-bob' for key 'idx_conversation_pair'"})
	mock.ExpectQuery("SELECT .* FROM .conversations.").
		WillReturnRows(conversationRows(7, "alice", "bob"))

	conv, err := repo.FindOrCreate("bob", "alice")

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), conv.ID)
	assert.Equal(t, "alice", conv.UserA)
	assert.Equal(t, "bob", conv.UserB)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationFindOrCreate_ReturnsExisting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationRepository(db)

	mock.ExpectQuery("SELECT .* FROM .conversations.").
		WillReturnRows(conversationRows(12, "alice", "bob"))

	conv, err := repo.FindOrCreate("alice", "bob")

	assert.NoError(t, err)
	assert.Equal(t, uint64(12), conv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
