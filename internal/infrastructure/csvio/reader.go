package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tuncanbit/txe/internal/domain"
	"github.com/tuncanbit/txe/pkg/amount"
)

// Reader decodes a transaction log row by row. The expected layout is
// `type,client,tx,amount` with a header row; fields may carry surrounding
// whitespace, and dispute-family rows may leave the amount column empty or
// omit it entirely. Reading is lazy: rows are decoded one at a time so logs
// far larger than memory stream through.
type Reader struct {
	csv        *csv.Reader
	headerSeen bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Dispute, resolve and chargeback rows may omit the amount column.
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Next decodes the next transaction. It returns io.EOF when the log is
// exhausted; any other error is a structural decode failure.
func (r *Reader) Next() (*domain.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			return nil, err
		}

		if !r.headerSeen {
			r.headerSeen = true
			if len(record) > 0 && strings.TrimSpace(record[0]) == "type" {
				continue
			}
		}

		return parseRecord(record)
	}
}

func parseRecord(record []string) (*domain.Transaction, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("malformed record: expected at least 3 fields, got %d", len(record))
	}

	txType := domain.TransactionType(strings.TrimSpace(record[0]))
	switch txType {
	case domain.TypeDeposit, domain.TypeWithdrawal, domain.TypeDispute,
		domain.TypeResolve, domain.TypeChargeback:
	default:
		return nil, fmt.Errorf("unknown transaction type: %q", record[0])
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client id %q: %v", record[1], err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %v", record[2], err)
	}

	var amt amount.Amount
	if len(record) > 3 {
		amt, err = amount.Parse(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, err
		}
	}

	return &domain.Transaction{
		Type:   txType,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
		Amount: amt,
	}, nil
}
