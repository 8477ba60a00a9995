package domain

import (
	"github.com/tuncanbit/txe/pkg/amount"
)

// Account holds one client's balances. Available may go negative when a
// withdrawal lands between a deposit and its dispute; Held never does.
// Locked is monotonic: once a chargeback sets it, it stays set for the
// rest of the replay.
type Account struct {
	Available amount.Amount `json:"available"`
	Held      amount.Amount `json:"held"`
	Locked    bool          `json:"locked"`
}

// Total returns the derived total balance.
func (a *Account) Total() amount.Amount {
	return a.Available + a.Held
}

// AccountRecord is one row of the final account snapshot.
type AccountRecord struct {
	Client    ClientID      `json:"client"`
	Available amount.Amount `json:"available"`
	Held      amount.Amount `json:"held"`
	Total     amount.Amount `json:"total"`
	Locked    bool          `json:"locked"`
}
