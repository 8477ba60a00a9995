package depositrepo

import (
	"github.com/tuncanbit/txe/internal/domain"
)

// DepositRepository keeps the deposit record index in process memory.
// The index grows linearly with the number of deposits; each entry is a
// compact {client, amount, status} triple, far smaller than retaining the
// raw rows. For logs too large for that, use the BoltDB-backed index.
type DepositRepository struct {
	records map[domain.TxID]*domain.DepositRecord
}

func New() IDepositRepository {
	return &DepositRepository{
		records: make(map[domain.TxID]*domain.DepositRecord),
	}
}

func (r *DepositRepository) Get(tx domain.TxID) (*domain.DepositRecord, error) {
	record, ok := r.records[tx]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *DepositRepository) Put(tx domain.TxID, record *domain.DepositRecord) error {
	if _, ok := r.records[tx]; ok {
		return ErrDuplicateTx
	}
	copied := *record
	r.records[tx] = &copied
	return nil
}

func (r *DepositRepository) SetStatus(tx domain.TxID, status domain.DepositStatus) error {
	record, ok := r.records[tx]
	if !ok {
		return ErrNotFound
	}
	record.Status = status
	return nil
}

func (r *DepositRepository) Close() error {
	return nil
}
