package accountrepo

import (
	"github.com/tuncanbit/txe/internal/domain"
)

// IAccountRepository is the account table: one account per client,
// created lazily on the first deposit or withdrawal that names the client.
// It is bounded by the number of distinct clients, which stays small.
type IAccountRepository interface {
	// GetOrCreate returns the client's account, creating an empty one if
	// none exists yet. The returned pointer is the live account.
	GetOrCreate(client domain.ClientID) *domain.Account

	// Get returns the client's account if it exists.
	Get(client domain.ClientID) (*domain.Account, bool)

	// Snapshot returns the final state of every account, ordered by
	// client id for deterministic output.
	Snapshot() []domain.AccountRecord

	// Len returns the number of accounts created so far.
	Len() int
}
