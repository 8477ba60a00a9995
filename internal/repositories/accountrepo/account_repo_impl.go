package accountrepo

import (
	"sort"

	"github.com/tuncanbit/txe/internal/domain"
)

type AccountRepository struct {
	accounts map[domain.ClientID]*domain.Account
}

func New() IAccountRepository {
	return &AccountRepository{
		accounts: make(map[domain.ClientID]*domain.Account),
	}
}

func (r *AccountRepository) GetOrCreate(client domain.ClientID) *domain.Account {
	account, ok := r.accounts[client]
	if !ok {
		account = &domain.Account{}
		r.accounts[client] = account
	}
	return account
}

func (r *AccountRepository) Get(client domain.ClientID) (*domain.Account, bool) {
	account, ok := r.accounts[client]
	return account, ok
}

func (r *AccountRepository) Snapshot() []domain.AccountRecord {
	records := make([]domain.AccountRecord, 0, len(r.accounts))
	for client, account := range r.accounts {
		records = append(records, domain.AccountRecord{
			Client:    client,
			Available: account.Available,
			Held:      account.Held,
			Total:     account.Total(),
			Locked:    account.Locked,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Client < records[j].Client
	})

	return records
}

func (r *AccountRepository) Len() int {
	return len(r.accounts)
}
