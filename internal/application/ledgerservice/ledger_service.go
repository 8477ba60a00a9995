package ledgerservice

import (
	"github.com/tuncanbit/txe/internal/domain"
	"github.com/tuncanbit/txe/internal/domain/interfaces"
)

// ILedgerService replays a chronological transaction log against per-client
// accounts. Events are applied strictly in input order; the order defines
// correctness. A replay either runs to completion and yields a snapshot, or
// aborts on the first fatal error with no snapshot at all.
type ILedgerService interface {
	// Apply mutates the account table and deposit index for one event.
	// Events with defined "no effect" semantics (unknown references,
	// duplicate disputes, insufficient funds, locked accounts) return nil
	// and are counted in Stats. The only errors are arithmetic overflow,
	// duplicate deposit transaction ids and index I/O failures — all fatal.
	Apply(tx *domain.Transaction) error

	// Replay drains the event source through Apply.
	Replay(source interfaces.EventSource) error

	// Snapshot returns the final state of every account that was created,
	// ordered by client id.
	Snapshot() []domain.AccountRecord

	// Stats reports diagnostic counters. They never influence the snapshot.
	Stats() Stats
}

// Stats counts applied events and silently absorbed no-ops by reason.
type Stats struct {
	Applied            uint64 `json:"applied"`
	LockedAccount      uint64 `json:"locked_account"`
	InsufficientFunds  uint64 `json:"insufficient_funds"`
	UnknownTransaction uint64 `json:"unknown_transaction"`
	ClientMismatch     uint64 `json:"client_mismatch"`
	InvalidStatus      uint64 `json:"invalid_status"`
}
