package draft

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"message-service/errors"
	"message-service/repositories"
)

func newTestStore(t *testing.T, passphrase string) *Store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(slog.Default(), repositories.NewDraftRepository(db, slog.Default()), passphrase)
}

func Test_Save_And_Find_Round_Trip(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, "a long enough master key")

	result, err := store.Save("asker-1", "room-1", "hello", "")
	req.NoError(err)
	req.Equal(SavedNew, result)

	plaintext, found, err := store.Find("asker-1", "room-1")
	req.NoError(err)
	req.True(found)
	req.Equal("hello", plaintext)
}

func Test_Save_Overwrites_Prior_Draft(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, "a long enough master key")

	result, err := store.Save("asker-1", "room-1", "first version", "")
	req.NoError(err)
	req.Equal(SavedNew, result)

	result, err = store.Save("asker-1", "room-1", "second version", "")
	req.NoError(err)
	req.Equal(SavedOverwritten, result)

	plaintext, found, err := store.Find("asker-1", "room-1")
	req.NoError(err)
	req.True(found)
	req.Equal("second version", plaintext)
}

func Test_Find_Absent_Draft_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, "a long enough master key")

	plaintext, found, err := store.Find("asker-1", "room-1")
	req.NoError(err)
	req.False(found)
	req.Empty(plaintext)
}

func Test_DeleteIfExists_Then_Find_Yields_No_Draft(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, "a long enough master key")

	_, err := store.Save("asker-1", "room-1", "hello", "")
	req.NoError(err)

	req.NoError(store.DeleteIfExists("asker-1", "room-1"))

	_, found, err := store.Find("asker-1", "room-1")
	req.NoError(err)
	req.False(found)

	// A second delete stays a no-op
	req.NoError(store.DeleteIfExists("asker-1", "room-1"))
}

func Test_Rotation_Leaves_Old_Drafts_Unreadable(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, "the retiring master key")

	// Given a draft sealed under the current key
	_, err := store.Save("asker-1", "room-1", "written before rotation", "")
	req.NoError(err)

	// When rotating without re-encryption
	req.NoError(store.RotateKey("the replacement master key"))

	// Then the old draft fails to decrypt, by design
	_, _, err = store.Find("asker-1", "room-1")
	req.ErrorIs(err, errors.ErrDecryptionFailed)

	// And new drafts seal and open under the fresh key
	_, err = store.Save("asker-1", "room-2", "written after rotation", "")
	req.NoError(err)
	plaintext, found, err := store.Find("asker-1", "room-2")
	req.NoError(err)
	req.True(found)
	req.Equal("written after rotation", plaintext)
}

func Test_Rotation_To_Same_Key_Is_Rejected(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, "the one and only key")

	err := store.RotateKey("the one and only key")
	req.ErrorIs(err, errors.ErrSameMasterKey)

	// The active key is untouched: existing drafts stay readable
	_, err = store.Save("asker-1", "room-1", "still fine", "")
	req.NoError(err)
	plaintext, found, err := store.Find("asker-1", "room-1")
	req.NoError(err)
	req.True(found)
	req.Equal("still fine", plaintext)
}
