// Package repositories persists drafts in BadgerDB.
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"message-service/contract"
)

// DraftPrefix namespaces draft rows inside the shared badger instance.
const DraftPrefix = "draft:"

type DraftRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDraftRepository(db *badger.DB, log *slog.Logger) DraftRepository {
	return DraftRepository{db: db, log: log}
}

// draftKey encodes the one-draft-per-(user, room) rule: the pair is the
// key, so a second save lands on the same row.
func draftKey(userID, roomID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", DraftPrefix, userID, roomID))
}

// Upsert writes the record and reports whether a new row was created.
// Existence check and write share one transaction, so a concurrent save
// for the same pair cannot interleave between them.
func (r DraftRepository) Upsert(rec contract.DraftRecord) (bool, error) {
	bytes, err := json.Marshal(rec)
	if err != nil {
		return false, err
	}

	created := false
	err = r.db.Update(func(txn *badger.Txn) error {
		key := draftKey(rec.UserID, rec.RoomID)
		_, getErr := txn.Get(key)
		switch getErr {
		case nil:
		case badger.ErrKeyNotFound:
			created = true
		default:
			return getErr
		}
		return txn.Set(key, bytes)
	})
	return created, err
}

// Find returns nil when no draft exists for the pair.
func (r DraftRepository) Find(userID, roomID string) (*contract.DraftRecord, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(draftKey(userID, roomID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			raw = append([]byte(nil), value...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec contract.DraftRecord
	if err = json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the draft for the pair. Absence is not an error.
func (r DraftRepository) Delete(userID, roomID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(draftKey(userID, roomID))
	})
	if err == badger.ErrKeyNotFound {
		return nil
	}
	return err
}

// List scans every draft row, for the inspector tooling. Bodies stay
// ciphertext; nothing here touches the master key.
func (r DraftRepository) List() ([]contract.DraftRecord, error) {
	var records []contract.DraftRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(DraftPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var rec contract.DraftRecord
				if err := json.Unmarshal(value, &rec); err != nil {
					r.log.Warn(fmt.Sprintf("Skipping unreadable draft row %s", strings.TrimPrefix(string(item.Key()), DraftPrefix)))
					return nil
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}
