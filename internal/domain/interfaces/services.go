package interfaces

import (
	"github.com/tuncanbit/txe/internal/domain"
)

// EventSource is a lazy, finite, non-restartable stream of decoded
// transactions. Next returns io.EOF once the log is exhausted; any other
// error is a structural decode failure and aborts the replay.
type EventSource interface {
	Next() (*domain.Transaction, error)
}
