package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReactionUpsert_CreatesNewReaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReactionRepository(db)

	mock.ExpectExec("INSERT INTO .message_reactions.").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT .* FROM .message_reactions.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "message_id", "user_id", "emoji", "created_at"}).
			AddRow(11, 5, "alice", "👍", time.Now()))

	reaction, err := repo.Upsert(5, "alice", "👍")

	assert.NoError(t, err)
	assert.Equal(t, uint64(11), reaction.ID)
	assert.Equal(t, "👍", reaction.Emoji)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactionUpsert_ConflictOverwritesEmoji(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReactionRepository(db)

	// MySQL reports 2 affected rows for an ON DUPLICATE KEY UPDATE that
	// changed an existing row, and no usable insert id. The re-fetch must
	// surface the stored row with its original id and the new emoji.
	mock.ExpectExec("INSERT INTO .message_reactions.").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("SELECT .* FROM .message_reactions.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "message_id", "user_id", "emoji", "created_at"}).
			AddRow(11, 5, "alice", "😂", time.Now()))

	reaction, err := repo.Upsert(5, "alice", "😂")

	assert.NoError(t, err)
	assert.Equal(t, uint64(11), reaction.ID)
	assert.Equal(t, "😂", reaction.Emoji)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactionDelete_MissingRowIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReactionRepository(db)

	mock.ExpectExec("DELETE FROM .message_reactions.").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(5, "nobody")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
