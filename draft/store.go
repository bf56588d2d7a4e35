// Package draft owns unsent per-user-per-room message bodies. Bodies are
// never persisted in plaintext: the store encrypts with the active master
// key before handing records to the repository.
package draft

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"message-service/contract"
	"message-service/errors"
)

// Argon2 parameters for deriving the AEAD key from the master-key
// passphrase, aligned with OWASP recommendations.
const (
	iterations  = 3
	memory      = 64 * 1024
	parallelism = 2
	keyLength   = chacha20poly1305.KeySize
)

// kdfContext is a domain-separation constant, not a secret. The salt must
// be deterministic so a restarted process derives the same key from the
// same passphrase.
var kdfContext = []byte("message-service/draft-master-key")

// masterKey is the derived key material plus a fingerprint used to detect
// a rotation to the identical key.
type masterKey struct {
	material    []byte
	fingerprint [sha256.Size]byte
}

func deriveMasterKey(passphrase string) masterKey {
	material := argon2.IDKey([]byte(passphrase), kdfContext, iterations, memory, parallelism, keyLength)
	return masterKey{material: material, fingerprint: sha256.Sum256(material)}
}

// SaveResult distinguishes a freshly created draft from an overwrite.
type SaveResult int

const (
	SavedNew SaveResult = iota
	SavedOverwritten
)

// Store encrypts, persists, retrieves and deletes drafts. It is the sole
// owner of the active master key; the key changes only through RotateKey.
type Store struct {
	log  *slog.Logger
	repo contract.DraftRepository

	mu  sync.RWMutex
	key masterKey
}

func NewStore(log *slog.Logger, repo contract.DraftRepository, passphrase string) *Store {
	return &Store{log: log, repo: repo, key: deriveMasterKey(passphrase)}
}

// Save encrypts the plaintext with the active key and overwrites any
// existing draft for the (user, room) pair.
func (s *Store) Save(userID, roomID, plaintext, msgType string) (SaveResult, error) {
	ciphertext, err := s.encrypt([]byte(plaintext))
	if err != nil {
		return 0, fmt.Errorf("encrypting draft: %w", err)
	}

	created, err := s.repo.Upsert(contract.DraftRecord{
		UserID:     userID,
		RoomID:     roomID,
		Ciphertext: ciphertext,
		Type:       msgType,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("storing draft: %w", err)
	}
	if created {
		return SavedNew, nil
	}
	return SavedOverwritten, nil
}

// Find decrypts the stored draft with the active key. No draft is a
// normal empty result. A draft written under a retired key fails with
// ErrDecryptionFailed: rotation does not re-encrypt existing rows.
func (s *Store) Find(userID, roomID string) (plaintext string, found bool, err error) {
	rec, err := s.repo.Find(userID, roomID)
	if err != nil {
		return "", false, err
	}
	if rec == nil {
		return "", false, nil
	}

	body, err := s.decrypt(rec.Ciphertext)
	if err != nil {
		return "", false, fmt.Errorf("%w: draft for room %s: %v", errors.ErrDecryptionFailed, roomID, err)
	}
	return string(body), true, nil
}

// DeleteIfExists removes the user's draft for the room; a missing draft
// is not an error.
func (s *Store) DeleteIfExists(userID, roomID string) error {
	return s.repo.Delete(userID, roomID)
}

// RotateKey atomically swaps the active key for subsequent encrypt and
// decrypt operations. Existing drafts are not re-encrypted. A key equal
// to the active one is rejected so callers can report the no-op.
func (s *Store) RotateKey(passphrase string) error {
	next := deriveMasterKey(passphrase)

	s.mu.Lock()
	defer s.mu.Unlock()
	if subtle.ConstantTimeCompare(next.fingerprint[:], s.key.fingerprint[:]) == 1 {
		return errors.ErrSameMasterKey
	}

	s.key = next
	s.log.Info("Master key rotated, existing drafts stay on the retired key")
	return nil
}

func (s *Store) aead() (cipher.AEAD, error) {
	s.mu.RLock()
	material := s.key.material
	s.mu.RUnlock()
	return chacha20poly1305.NewX(material)
}

// encrypt seals with a fresh random nonce, prepended to the ciphertext.
func (s *Store) encrypt(plaintext []byte) ([]byte, error) {
	aead, err := s.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) decrypt(ciphertext []byte) ([]byte, error) {
	aead, err := s.aead()
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext shorter than nonce")
	}
	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	return aead.Open(nil, nonce, sealed, nil)
}
