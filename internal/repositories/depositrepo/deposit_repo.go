package depositrepo

import (
	"errors"

	"github.com/tuncanbit/txe/internal/domain"
)

// ErrNotFound is returned when no deposit record exists for a transaction id.
var ErrNotFound = errors.New("deposit record not found")

// ErrDuplicateTx is returned when a deposit reuses an already-indexed
// transaction id. Transaction ids are globally unique by contract, so a
// duplicate means corrupted input and the replay must abort.
var ErrDuplicateTx = errors.New("duplicate deposit transaction id")

// IDepositRepository is the deposit record index: every deposit seen so far,
// keyed by transaction id, so a later dispute, resolve or chargeback can
// recover the original amount and track its status. Records are never
// evicted while a replay is running — any past deposit may still be disputed.
type IDepositRepository interface {
	// Get returns the record for tx, or ErrNotFound.
	Get(tx domain.TxID) (*domain.DepositRecord, error)

	// Put indexes a new deposit. Returns ErrDuplicateTx if tx is already
	// indexed; the existing record is left untouched.
	Put(tx domain.TxID, record *domain.DepositRecord) error

	// SetStatus advances the dispute status of an indexed deposit.
	SetStatus(tx domain.TxID, status domain.DepositStatus) error

	// Close releases any resources backing the index.
	Close() error
}
