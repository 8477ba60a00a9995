package replayservice

import (
	"io"

	"github.com/tuncanbit/txe/internal/application/ledgerservice"
	"github.com/tuncanbit/txe/internal/domain"
)

// IReplayService runs one-shot batch replays: decode a transaction log,
// drive it through the ledger, produce the final account snapshot. Each run
// starts from an empty account table and an empty deposit index; nothing
// persists between runs.
type IReplayService interface {
	// Run replays the log on input and writes the CSV snapshot to output.
	// On error nothing is written to output.
	Run(input io.Reader, output io.Writer) error

	// RunSnapshot replays the log and returns the snapshot and diagnostic
	// counters instead of serializing them.
	RunSnapshot(input io.Reader) ([]domain.AccountRecord, ledgerservice.Stats, error)
}
