package domain

import (
	"github.com/tuncanbit/txe/pkg/amount"
)

type TransactionType string
type DepositStatus string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeDispute    TransactionType = "dispute"
	TypeResolve    TransactionType = "resolve"
	TypeChargeback TransactionType = "chargeback"
)

const (
	StatusOpen        DepositStatus = "open"
	StatusDisputed    DepositStatus = "disputed"
	StatusResolved    DepositStatus = "resolved"
	StatusChargedBack DepositStatus = "charged_back"
)

// ClientID identifies the owner of one account.
type ClientID uint16

// TxID identifies a deposit or withdrawal. IDs are globally unique
// across both kinds.
type TxID uint32

// Transaction is one decoded row of the input log. Amount is only
// meaningful for deposits and withdrawals; for the dispute family Tx
// references the earlier deposit instead of naming a new transaction.
type Transaction struct {
	Type   TransactionType `json:"type"`
	Client ClientID        `json:"client"`
	Tx     TxID            `json:"tx"`
	Amount amount.Amount   `json:"amount"`
}

// DepositRecord is the per-deposit bookkeeping entry that lets a later
// dispute, resolve or chargeback recover the original amount. Client and
// Amount are fixed at creation; only Status advances, and never past the
// terminal states.
type DepositRecord struct {
	Client ClientID      `json:"client"`
	Amount amount.Amount `json:"amount"`
	Status DepositStatus `json:"status"`
}
