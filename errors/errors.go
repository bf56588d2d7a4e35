package errors

import "fmt"

var (
	// ErrBackendUnavailable covers an unreachable chat backend as well as a
	// backend reply that reports failure. Surfaced as a server error.
	ErrBackendUnavailable = fmt.Errorf("chat backend unavailable")

	// Caller input errors, surfaced as client errors and never retried.
	ErrInvalidFeedbackRoom    = fmt.Errorf("room is not a feedback room")
	ErrNotAReassignment       = fmt.Errorf("message is not a reassignment")
	ErrIncompleteReassignment = fmt.Errorf("reassignment is missing mandatory fields")
	ErrIllegalTransition      = fmt.Errorf("illegal reassignment transition")

	// ErrNotMessageCreator rejects a deletion by anyone but the message's
	// own sender. Surfaced as a permission error.
	ErrNotMessageCreator = fmt.Errorf("message belongs to another sender")

	// ErrDecryptionFailed signals a draft whose ciphertext cannot be read
	// with the active master key, typically after a key rotation.
	ErrDecryptionFailed = fmt.Errorf("draft decryption failed")

	// ErrSameMasterKey rejects a rotation to the key already in use.
	ErrSameMasterKey = fmt.Errorf("master key unchanged")
)
