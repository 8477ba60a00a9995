package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncanbit/txe/internal/domain"
	"github.com/tuncanbit/txe/pkg/amount"
)

func readAll(t *testing.T, input string) []domain.Transaction {
	t.Helper()
	reader := NewReader(strings.NewReader(input))

	var txs []domain.Transaction
	for {
		tx, err := reader.Next()
		if err == io.EOF {
			return txs
		}
		require.NoError(t, err)
		txs = append(txs, *tx)
	}
}

func TestReadWellFormedLog(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit, 1, 1, 1.0\n" +
		"withdrawal, 2, 2, 2.1000\n" +
		"dispute, 3, 3,\n" +
		"resolve, 4, 4,\n" +
		"chargeback, 5, 5,\n"

	txs := readAll(t, input)
	require.Len(t, txs, 5)

	assert.Equal(t, domain.Transaction{Type: domain.TypeDeposit, Client: 1, Tx: 1, Amount: 10000}, txs[0])
	assert.Equal(t, domain.Transaction{Type: domain.TypeWithdrawal, Client: 2, Tx: 2, Amount: 21000}, txs[1])
	assert.Equal(t, domain.Transaction{Type: domain.TypeDispute, Client: 3, Tx: 3}, txs[2])
	assert.Equal(t, domain.Transaction{Type: domain.TypeResolve, Client: 4, Tx: 4}, txs[3])
	assert.Equal(t, domain.Transaction{Type: domain.TypeChargeback, Client: 5, Tx: 5}, txs[4])
}

func TestReadTrimsWhitespace(t *testing.T) {
	input := "type,\tclient\t,\ttx,\tamount\n" +
		"deposit,\t1,\t1,\t1.5\n"

	txs := readAll(t, input)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.ClientID(1), txs[0].Client)
	assert.Equal(t, "1.5000", txs[0].Amount.String())
}

func TestReadDisputeWithoutAmountColumn(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,3.0\n" +
		"dispute,1,1\n"

	txs := readAll(t, input)
	require.Len(t, txs, 2)
	assert.Equal(t, domain.TypeDispute, txs[1].Type)
	assert.Equal(t, amount.Amount(0), txs[1].Amount)
}

func TestReadRejectsInvalidAmount(t *testing.T) {
	cases := []string{".0", "A", "1.3434.233", ".3434.233", "a.233", "1.23456"}

	for _, invalid := range cases {
		t.Run(invalid, func(t *testing.T) {
			reader := NewReader(strings.NewReader("type,client,tx,amount\ndeposit,1,1," + invalid + "\n"))
			_, err := reader.Next()
			assert.Error(t, err)
		})
	}
}

func TestReadRejectsUnknownType(t *testing.T) {
	reader := NewReader(strings.NewReader("type,client,tx,amount\ntransfer,1,1,1.0\n"))
	_, err := reader.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
}

func TestReadRejectsInvalidClient(t *testing.T) {
	reader := NewReader(strings.NewReader("type,client,tx,amount\ndeposit,70000,1,1.0\n"))
	_, err := reader.Next()
	assert.Error(t, err, "client ids above the uint16 range are rejected")
}

func TestReadRejectsInvalidTx(t *testing.T) {
	reader := NewReader(strings.NewReader("type,client,tx,amount\ndeposit,1,notanumber,1.0\n"))
	_, err := reader.Next()
	assert.Error(t, err)
}

func TestReadEmptyLog(t *testing.T) {
	reader := NewReader(strings.NewReader("type,client,tx,amount\n"))
	_, err := reader.Next()
	assert.Equal(t, io.EOF, err)
}
